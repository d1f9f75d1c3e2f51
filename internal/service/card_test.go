package service

import (
	"testing"

	"github.com/Zaker237/projectboard/internal/events"
	"github.com/Zaker237/projectboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type cardFixture struct {
	db      *gorm.DB
	svc     *CardService
	owner   *model.User
	project *model.Project
	todo    *model.Step
	doing   *model.Step
	loose   *model.Step // exists but not attached to the project
}

func newCardFixture(t *testing.T) *cardFixture {
	db := openTestDB(t)
	psSvc := NewProjectStepService(db)
	owner := seedUser(t, db, "alex")
	project := seedProject(t, db, owner.ID, "website")
	todo := seedStep(t, db, owner.ID, "todo")
	doing := seedStep(t, db, owner.ID, "doing")
	loose := seedStep(t, db, owner.ID, "someday")
	require.NoError(t, psSvc.AddStep(project.ID, todo.ID))
	require.NoError(t, psSvc.AddStep(project.ID, doing.ID))

	return &cardFixture{
		db: db, svc: NewCardService(db),
		owner: owner, project: project, todo: todo, doing: doing, loose: loose,
	}
}

func (f *cardFixture) newCard(title string) *model.Card {
	return &model.Card{
		CreatedByID: f.owner.ID,
		AssignToID:  f.owner.ID,
		ProjectID:   f.project.ID,
		StepID:      f.todo.ID,
		Title:       title,
	}
}

func TestCardCreate(t *testing.T) {
	f := newCardFixture(t)

	card, err := f.svc.Create(f.newCard("write landing page"))
	require.NoError(t, err)
	require.NotZero(t, card.ID)

	got, err := f.svc.GetByID(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "write landing page", got.Title)
	assert.Equal(t, f.todo.ID, got.StepID)
}

func TestCardCreateValidatesRefs(t *testing.T) {
	f := newCardFixture(t)

	card := f.newCard("x")
	card.CreatedByID = 9999
	_, err := f.svc.Create(card)
	assert.Equal(t, 40401, errCode(t, err))

	card = f.newCard("x")
	card.AssignToID = 9999
	_, err = f.svc.Create(card)
	assert.Equal(t, 40401, errCode(t, err))

	card = f.newCard("x")
	card.ProjectID = 9999
	_, err = f.svc.Create(card)
	assert.Equal(t, 40402, errCode(t, err))

	card = f.newCard("x")
	card.StepID = 9999
	_, err = f.svc.Create(card)
	assert.Equal(t, 40403, errCode(t, err))
}

func TestCardCreateStepMustBeOnBoard(t *testing.T) {
	f := newCardFixture(t)

	card := f.newCard("x")
	card.StepID = f.loose.ID
	_, err := f.svc.Create(card)
	assert.Equal(t, 40406, errCode(t, err))
}

func TestCardTitleUniqueWithinStep(t *testing.T) {
	f := newCardFixture(t)

	_, err := f.svc.Create(f.newCard("deploy"))
	require.NoError(t, err)

	_, err = f.svc.Create(f.newCard("deploy"))
	assert.Equal(t, 40901, errCode(t, err))

	// Same title in another column is allowed.
	other := f.newCard("deploy")
	other.StepID = f.doing.ID
	_, err = f.svc.Create(other)
	assert.NoError(t, err)
}

func TestCardMoveToAnotherStep(t *testing.T) {
	f := newCardFixture(t)
	card, err := f.svc.Create(f.newCard("deploy"))
	require.NoError(t, err)

	updated, err := f.svc.Update(card.ID, map[string]interface{}{"step_id": f.doing.ID})
	require.NoError(t, err)
	assert.Equal(t, f.doing.ID, updated.StepID)

	_, err = f.svc.Update(card.ID, map[string]interface{}{"step_id": f.loose.ID})
	assert.Equal(t, 40406, errCode(t, err))
}

func TestCardUpdateUnknownAssignee(t *testing.T) {
	f := newCardFixture(t)
	card, err := f.svc.Create(f.newCard("deploy"))
	require.NoError(t, err)

	_, err = f.svc.Update(card.ID, map[string]interface{}{"assign_to_id": uint(9999)})
	assert.Equal(t, 40401, errCode(t, err))
}

func TestCardListByProjectAndStep(t *testing.T) {
	f := newCardFixture(t)
	_, err := f.svc.Create(f.newCard("a"))
	require.NoError(t, err)
	inDoing := f.newCard("b")
	inDoing.StepID = f.doing.ID
	_, err = f.svc.Create(inDoing)
	require.NoError(t, err)

	all, err := f.svc.ListByProject(f.project.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	column, err := f.svc.ListByProjectStep(f.project.ID, f.doing.ID)
	require.NoError(t, err)
	require.Len(t, column, 1)
	assert.Equal(t, "b", column[0].Title)
}

func TestCardDelete(t *testing.T) {
	f := newCardFixture(t)
	card, err := f.svc.Create(f.newCard("a"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(card.ID))
	assert.Equal(t, 40404, errCode(t, f.svc.Delete(card.ID)))
}

func TestCardLifecycleBroadcastsEvents(t *testing.T) {
	f := newCardFixture(t)
	hub := events.NewHub(nil)
	f.svc.SetHub(hub)

	ch, unsub := hub.Subscribe(f.project.ID)
	defer unsub()

	card, err := f.svc.Create(f.newCard("a"))
	require.NoError(t, err)
	_, err = f.svc.Update(card.ID, map[string]interface{}{"step_id": f.doing.ID})
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(card.ID))

	assert.Equal(t, events.TypeCardCreated, (<-ch).Type)
	assert.Equal(t, events.TypeCardUpdated, (<-ch).Type)
	assert.Equal(t, events.TypeCardDeleted, (<-ch).Type)
}
