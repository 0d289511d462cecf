package utils

import (
	"testing"

	"github.com/hmorita/group-task-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNewID(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	id, err := NewID(db, "user")
	require.NoError(t, err)
	require.Len(t, id, 36)

	other, err := NewID(db, "user")
	require.NoError(t, err)
	require.NotEqual(t, id, other)

	_, err = NewID(db, "nonsense")
	require.Error(t, err)
}
