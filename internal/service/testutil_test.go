package service

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Zaker237/projectboard/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh pooled connection would see an empty database again.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Step{},
		&model.ProjectStep{},
		&model.ProjectMember{},
		&model.Card{},
		&model.Comment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		GoogleID: "google-" + username,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProject(t *testing.T, db *gorm.DB, ownerID uint, name string) *model.Project {
	t.Helper()
	project := &model.Project{
		OwnerID: ownerID,
		Name:    name,
		StartAt: time.Now(),
		EndsAt:  time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedStep(t *testing.T, db *gorm.DB, creatorID uint, name string) *model.Step {
	t.Helper()
	step := &model.Step{CreatedByID: creatorID, Name: name}
	require.NoError(t, db.Create(step).Error)
	return step
}

// errCode extracts the 5-digit application code of a service error.
func errCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	parts := strings.SplitN(err.Error(), ":", 2)
	require.Len(t, parts, 2, "error %q carries no code", err)
	code, convErr := strconv.Atoi(parts[0])
	require.NoError(t, convErr, "error %q carries no numeric code", err)
	return code
}

// assertBoard checks that the project's rows are exactly the given steps in
// order, with contiguous positions 1..N.
func assertBoard(t *testing.T, db *gorm.DB, projectID uint, stepIDs ...uint) {
	t.Helper()
	var rows []model.ProjectStep
	require.NoError(t, db.Where("project_id = ?", projectID).Order("position ASC").Find(&rows).Error)
	require.Len(t, rows, len(stepIDs))
	for i, row := range rows {
		require.Equal(t, i+1, row.Position, "position at index %d", i)
		require.Equal(t, stepIDs[i], row.StepID, "step at position %d", i+1)
	}
}
