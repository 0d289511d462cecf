package models

import "time"

type Task struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Due         time.Time `json:"due"`
	EstDay      int       `json:"est_day"`
	EstHour     int       `json:"est_hour"`
	EstMin      int       `json:"est_min"`
	AssignerID  string    `gorm:"type:varchar(36);not null;index" json:"assigner_id"`
	AssigneeID  string    `gorm:"type:varchar(36);not null;index" json:"assignee_id"`
	// GroupID is nil for personal tasks. The wire layer still accepts the
	// legacy "0" sentinel and normalizes it before it reaches the store.
	GroupID   *string   `gorm:"type:varchar(36);index" json:"group_id"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	Priority  int       `json:"priority"`
	Recursive bool      `json:"recursive"`
	ImagePath string    `gorm:"type:varchar(512)" json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Assigner User `gorm:"foreignKey:AssignerID" json:"assigner,omitempty"`
	Assignee User `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}
