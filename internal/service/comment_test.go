package service

import (
	"testing"

	"github.com/Zaker237/projectboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCard(t *testing.T, db *gorm.DB) (*model.User, *model.Card) {
	t.Helper()
	owner := seedUser(t, db, "alex")
	project := seedProject(t, db, owner.ID, "website")
	step := seedStep(t, db, owner.ID, "todo")
	require.NoError(t, NewProjectStepService(db).AddStep(project.ID, step.ID))

	card, err := NewCardService(db).Create(&model.Card{
		CreatedByID: owner.ID,
		AssignToID:  owner.ID,
		ProjectID:   project.ID,
		StepID:      step.ID,
		Title:       "deploy",
	})
	require.NoError(t, err)
	return owner, card
}

func TestCommentCreateAndListByCard(t *testing.T) {
	db := openTestDB(t)
	svc := NewCommentService(db)
	owner, card := seedCard(t, db)

	_, err := svc.Create(&model.Comment{CreatedByID: owner.ID, CardID: card.ID, Text: "first"})
	require.NoError(t, err)
	_, err = svc.Create(&model.Comment{CreatedByID: owner.ID, CardID: card.ID, Text: "second"})
	require.NoError(t, err)

	comments, err := svc.ListByCard(card.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
}

func TestCommentCreateValidatesRefs(t *testing.T) {
	db := openTestDB(t)
	svc := NewCommentService(db)
	owner, card := seedCard(t, db)

	_, err := svc.Create(&model.Comment{CreatedByID: 9999, CardID: card.ID, Text: "x"})
	assert.Equal(t, 40401, errCode(t, err))

	_, err = svc.Create(&model.Comment{CreatedByID: owner.ID, CardID: 9999, Text: "x"})
	assert.Equal(t, 40404, errCode(t, err))
}

func TestCommentUpdate(t *testing.T) {
	db := openTestDB(t)
	svc := NewCommentService(db)
	owner, card := seedCard(t, db)

	comment, err := svc.Create(&model.Comment{CreatedByID: owner.ID, CardID: card.ID, Text: "first"})
	require.NoError(t, err)

	updated, err := svc.Update(comment.ID, map[string]interface{}{"text": "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	_, err = svc.Update(9999, map[string]interface{}{"text": "x"})
	assert.Equal(t, 40405, errCode(t, err))
}

func TestCommentDelete(t *testing.T) {
	db := openTestDB(t)
	svc := NewCommentService(db)
	owner, card := seedCard(t, db)

	comment, err := svc.Create(&model.Comment{CreatedByID: owner.ID, CardID: card.ID, Text: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(comment.ID))
	assert.Equal(t, 40405, errCode(t, svc.Delete(comment.ID)))
}

func TestCommentListByCreator(t *testing.T) {
	db := openTestDB(t)
	svc := NewCommentService(db)
	owner, card := seedCard(t, db)
	berta := seedUser(t, db, "berta")

	_, err := svc.Create(&model.Comment{CreatedByID: owner.ID, CardID: card.ID, Text: "mine"})
	require.NoError(t, err)
	_, err = svc.Create(&model.Comment{CreatedByID: berta.ID, CardID: card.ID, Text: "hers"})
	require.NoError(t, err)

	comments, err := svc.ListByCreator(berta.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "hers", comments[0].Text)
}
