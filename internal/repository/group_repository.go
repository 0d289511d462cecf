package repository

import (
	"github.com/hmorita/group-task-api/internal/models"
	"gorm.io/gorm"
)

// GormGroupRepository is a GORM implementation of GroupRepository
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository over the given handle.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db: db}
}

// Create inserts the group row and the owner's membership atomically.
func (r *GormGroupRepository) Create(group *models.Group, owner *models.GroupMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		owner.GroupID = group.ID
		return tx.Create(owner).Error
	})
}

// FindByID finds a group by ID
func (r *GormGroupRepository) FindByID(id string) (*models.Group, error) {
	var group models.Group
	if err := r.db.Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// AddMember inserts a membership row
func (r *GormGroupRepository) AddMember(member *models.GroupMember) error {
	return r.db.Create(member).Error
}

// RemoveMember deletes a membership row, reporting affected rows so the
// caller can tell whether this delete (and not a racing one) removed it.
func (r *GormGroupRepository) RemoveMember(groupID, userID string) (int64, error) {
	result := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{})
	return result.RowsAffected, result.Error
}

// CountMembers counts the remaining members of a group
func (r *GormGroupRepository) CountMembers(groupID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

// DeleteCascade removes the group, its memberships, and its invites.
func (r *GormGroupRepository) DeleteCascade(groupID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", groupID).Delete(&models.Group{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Where("group_id = ?", groupID).Delete(&models.GroupInvite{}).Error
	})
}

// ListMembershipsByUser lists memberships of a user with groups preloaded
func (r *GormGroupRepository) ListMembershipsByUser(userID string) ([]models.GroupMember, error) {
	var memberships []models.GroupMember
	if err := r.db.Preload("Group").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListMembers lists the members of a group with users preloaded
func (r *GormGroupRepository) ListMembers(groupID string) ([]models.GroupMember, error) {
	var members []models.GroupMember
	if err := r.db.Preload("User").
		Where("group_id = ?", groupID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
