package models

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
)

type GroupInvite struct {
	InviteID  string       `gorm:"type:varchar(36);primarykey" json:"invite_id"`
	GroupID   string       `gorm:"type:varchar(36);not null;index" json:"group_id"`
	InviteeID string       `gorm:"type:varchar(36);not null;index" json:"invitee_id"`
	InviterID string       `gorm:"type:varchar(36);not null" json:"inviter_id"`
	Status    InviteStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time    `json:"created_at"`

	// Relations
	Group   Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Invitee User  `gorm:"foreignKey:InviteeID" json:"invitee,omitempty"`
	Inviter User  `gorm:"foreignKey:InviterID" json:"inviter,omitempty"`
}
