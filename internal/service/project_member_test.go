package service

import (
	"testing"

	"github.com/Zaker237/projectboard/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberAddAndList(t *testing.T) {
	db := openTestDB(t)
	svc := NewProjectMemberService(db)
	owner := seedUser(t, db, "alex")
	berta := seedUser(t, db, "berta")
	project := seedProject(t, db, owner.ID, "website")

	require.NoError(t, svc.AddMember(project.ID, berta.ID, false))
	require.NoError(t, svc.AddMember(project.ID, owner.ID, true))

	members, err := svc.ListMembers(project.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.NotNil(t, members[0].User)
	assert.Equal(t, "berta", members[0].User.Username)
	assert.False(t, members[0].Admin)
}

func TestMemberAddTwiceConflicts(t *testing.T) {
	db := openTestDB(t)
	svc := NewProjectMemberService(db)
	owner := seedUser(t, db, "alex")
	project := seedProject(t, db, owner.ID, "website")

	require.NoError(t, svc.AddMember(project.ID, owner.ID, false))
	err := svc.AddMember(project.ID, owner.ID, true)
	assert.Equal(t, 40903, errCode(t, err))
}

func TestMemberAddUnknownRefs(t *testing.T) {
	db := openTestDB(t)
	svc := NewProjectMemberService(db)
	owner := seedUser(t, db, "alex")
	project := seedProject(t, db, owner.ID, "website")

	assert.Equal(t, 40402, errCode(t, svc.AddMember(9999, owner.ID, false)))
	assert.Equal(t, 40401, errCode(t, svc.AddMember(project.ID, 9999, false)))
}

func TestMemberUpdateAdminFlag(t *testing.T) {
	db := openTestDB(t)
	svc := NewProjectMemberService(db)
	owner := seedUser(t, db, "alex")
	berta := seedUser(t, db, "berta")
	project := seedProject(t, db, owner.ID, "website")

	require.NoError(t, svc.AddMember(project.ID, berta.ID, false))
	require.NoError(t, svc.UpdateMember(project.ID, berta.ID, true))

	members, err := svc.ListMembers(project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.True(t, members[0].Admin)

	err = svc.UpdateMember(project.ID, owner.ID, true)
	assert.Equal(t, 40407, errCode(t, err))
}

func TestMemberRemove(t *testing.T) {
	db := openTestDB(t)
	svc := NewProjectMemberService(db)
	owner := seedUser(t, db, "alex")
	berta := seedUser(t, db, "berta")
	project := seedProject(t, db, owner.ID, "website")

	require.NoError(t, svc.AddMember(project.ID, berta.ID, false))
	require.NoError(t, svc.RemoveMember(project.ID, berta.ID))

	err := svc.RemoveMember(project.ID, berta.ID)
	assert.Equal(t, 40407, errCode(t, err))
}

func TestMemberChangesBroadcastEvents(t *testing.T) {
	db := openTestDB(t)
	svc := NewProjectMemberService(db)
	hub := events.NewHub(nil)
	svc.SetHub(hub)

	owner := seedUser(t, db, "alex")
	berta := seedUser(t, db, "berta")
	project := seedProject(t, db, owner.ID, "website")

	ch, unsub := hub.Subscribe(project.ID)
	defer unsub()

	require.NoError(t, svc.AddMember(project.ID, berta.ID, false))
	require.NoError(t, svc.RemoveMember(project.ID, berta.ID))

	assert.Equal(t, events.TypeMemberAdded, (<-ch).Type)
	assert.Equal(t, events.TypeMemberRemoved, (<-ch).Type)
}
