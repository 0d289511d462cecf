package models

import "time"

type Group struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     string    `gorm:"type:varchar(36);not null" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Members []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Invites []GroupInvite `gorm:"foreignKey:GroupID" json:"invites,omitempty"`
	Tasks   []Task        `gorm:"foreignKey:GroupID" json:"tasks,omitempty"`
}

// TableName keeps the historical table name from the first schema iteration.
func (Group) TableName() string {
	return "task_groups"
}
