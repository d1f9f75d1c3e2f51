package service

import (
	"testing"

	"github.com/Zaker237/projectboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndList(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Create(&model.User{
		Username: "alex", Email: "alex@example.com", GoogleID: "g-1",
	})
	require.NoError(t, err)
	_, err = svc.Create(&model.User{
		Username: "berta", Email: "berta@example.com", GoogleID: "g-2",
	})
	require.NoError(t, err)

	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserCreateDuplicate(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "alex")

	// Same username
	_, err := svc.Create(&model.User{
		Username: "alex", Email: "other@example.com", GoogleID: "g-x",
	})
	assert.Equal(t, 40901, errCode(t, err))

	// Same email
	_, err = svc.Create(&model.User{
		Username: "other", Email: "alex@example.com", GoogleID: "g-y",
	})
	assert.Equal(t, 40901, errCode(t, err))

	// Same google account
	_, err = svc.Create(&model.User{
		Username: "third", Email: "third@example.com", GoogleID: "google-alex",
	})
	assert.Equal(t, 40901, errCode(t, err))
}

func TestUserUpdate(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	user := seedUser(t, db, "alex")

	updated, err := svc.Update(user.ID, map[string]interface{}{
		"firstname": "Alex",
		"lastname":  "Walker",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex", updated.Firstname)
	assert.Equal(t, "Walker", updated.Lastname)
}

func TestUserUpdateUsernameConflict(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "alex")
	berta := seedUser(t, db, "berta")

	_, err := svc.Update(berta.ID, map[string]interface{}{"username": "alex"})
	assert.Equal(t, 40901, errCode(t, err))
}

func TestUserGetUnknown(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)

	_, err := svc.GetByID(9999)
	assert.Equal(t, 40401, errCode(t, err))
}

func TestUserDelete(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	user := seedUser(t, db, "alex")

	require.NoError(t, svc.Delete(user.ID))
	assert.Equal(t, 40401, errCode(t, svc.Delete(user.ID)))
}
