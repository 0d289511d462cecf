package utils

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hmorita/group-task-api/internal/constants"
	"github.com/hmorita/group-task-api/internal/guard"
	"gorm.io/gorm"
)

// NewID generates a random id guaranteed not to collide with a live row of
// the named table. Regenerates on collision, bounded so a broken store cannot
// spin forever.
func NewID(db *gorm.DB, table string) (string, error) {
	for i := 0; i < constants.MaxIDAttempts; i++ {
		id := uuid.NewString()
		taken, err := guard.IDTaken(db, table, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("id generation for table %q kept colliding", table)
}
