package services

import (
	"testing"
	"time"

	"github.com/hmorita/group-task-api/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "supersecret"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.MigrateWith(db))
	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string) string {
	t.Helper()

	id, err := NewUserService(db).Create(CreateUserInput{
		Username: username,
		Email:    username + "@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	return id
}

func mustCreateGroup(t *testing.T, db *gorm.DB, ownerID, name string) string {
	t.Helper()

	id, err := NewGroupService(db).Create(CreateGroupInput{
		OwnerID:  ownerID,
		Name:     name,
		Password: testPassword,
	})
	require.NoError(t, err)
	return id
}

func mustCreateTask(t *testing.T, db *gorm.DB, assignerID, assigneeID string, groupID *string) string {
	t.Helper()

	id, err := NewTaskService(db).Add(TaskInput{
		Name:       "write report",
		Due:        time.Now().Add(48 * time.Hour),
		AssignerID: assignerID,
		AssigneeID: assigneeID,
		GroupID:    groupID,
		Password:   testPassword,
	})
	require.NoError(t, err)
	return id
}
