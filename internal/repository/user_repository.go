package repository

import (
	"github.com/hmorita/group-task-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository over the given handle. The
// handle may be a transaction; repositories never open their own.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user row
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves changed user fields
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteCascade removes the user and every dependent row in one transaction.
func (r *GormUserRepository) DeleteCascade(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).Delete(&models.User{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assigner_id = ? OR assignee_id = ?", userID, userID).
			Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Where("inviter_id = ? OR invitee_id = ?", userID, userID).
			Delete(&models.GroupInvite{}).Error
	})
}
