package dto

import (
	"time"

	"github.com/hmorita/group-task-api/internal/models"
)

// PendingInviteDTO represents an invite from the invitee's point of view
type PendingInviteDTO struct {
	InviteID    string              `json:"invite_id"`
	GroupID     string              `json:"group_id"`
	GroupName   string              `json:"group_name"`
	InviterID   string              `json:"inviter_id"`
	InviterName string              `json:"inviter_name"`
	Status      models.InviteStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

// SentInviteDTO represents an invite from the group's point of view
type SentInviteDTO struct {
	InviteID    string              `json:"invite_id"`
	InviterID   string              `json:"inviter_id"`
	InviterName string              `json:"inviter_name"`
	InviteeID   string              `json:"invitee_id"`
	InviteeName string              `json:"invitee_name"`
	Status      models.InviteStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ToPendingInviteDTO converts an invite (group and inviter preloaded)
func ToPendingInviteDTO(invite models.GroupInvite) PendingInviteDTO {
	return PendingInviteDTO{
		InviteID:    invite.InviteID,
		GroupID:     invite.GroupID,
		GroupName:   invite.Group.Name,
		InviterID:   invite.InviterID,
		InviterName: invite.Inviter.Username,
		Status:      invite.Status,
		CreatedAt:   invite.CreatedAt,
	}
}

// ToSentInviteDTO converts an invite (both parties preloaded)
func ToSentInviteDTO(invite models.GroupInvite) SentInviteDTO {
	return SentInviteDTO{
		InviteID:    invite.InviteID,
		InviterID:   invite.InviterID,
		InviterName: invite.Inviter.Username,
		InviteeID:   invite.InviteeID,
		InviteeName: invite.Invitee.Username,
		Status:      invite.Status,
		CreatedAt:   invite.CreatedAt,
	}
}
