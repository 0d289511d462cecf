package repository

import (
	"github.com/hmorita/group-task-api/internal/models"
	"gorm.io/gorm"
)

// GormInviteRepository is a GORM implementation of InviteRepository
type GormInviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new InviteRepository over the given handle.
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &GormInviteRepository{db: db}
}

// Create inserts an invite row
func (r *GormInviteRepository) Create(invite *models.GroupInvite) error {
	return r.db.Create(invite).Error
}

// Update saves changed invite fields
func (r *GormInviteRepository) Update(invite *models.GroupInvite) error {
	return r.db.Save(invite).Error
}

// Delete removes an invite row by primary key
func (r *GormInviteRepository) Delete(inviteID string) error {
	return r.db.Where("invite_id = ?", inviteID).Delete(&models.GroupInvite{}).Error
}

// FindByID finds an invite by primary key
func (r *GormInviteRepository) FindByID(inviteID string) (*models.GroupInvite, error) {
	var invite models.GroupInvite
	if err := r.db.Where("invite_id = ?", inviteID).First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// FindByPair finds the most recent invite for (invitee, group)
func (r *GormInviteRepository) FindByPair(inviteeID, groupID string) (*models.GroupInvite, error) {
	var invite models.GroupInvite
	if err := r.db.Where("invitee_id = ? AND group_id = ?", inviteeID, groupID).
		Order("created_at DESC").
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListForInvitee lists invites addressed to a user, group and inviter preloaded
func (r *GormInviteRepository) ListForInvitee(userID string) ([]models.GroupInvite, error) {
	var invites []models.GroupInvite
	if err := r.db.Preload("Group").Preload("Inviter").
		Where("invitee_id = ?", userID).
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// ListForGroup lists invites a group has sent, both parties preloaded
func (r *GormInviteRepository) ListForGroup(groupID string) ([]models.GroupInvite, error) {
	var invites []models.GroupInvite
	if err := r.db.Preload("Inviter").Preload("Invitee").
		Where("group_id = ?", groupID).
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}
