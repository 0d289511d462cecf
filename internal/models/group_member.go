package models

import "time"

type GroupMember struct {
	GroupID  string    `gorm:"type:varchar(36);primarykey" json:"group_id"`
	UserID   string    `gorm:"type:varchar(36);primarykey" json:"user_id"`
	Role     *string   `gorm:"type:varchar(50)" json:"role"`
	JoinedAt time.Time `json:"joined_at"`

	// Relations
	Group Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
