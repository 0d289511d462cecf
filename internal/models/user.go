package models

import "time"

type User struct {
	ID       string `gorm:"type:varchar(36);primarykey" json:"id"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	// Password is stored and compared as an opaque string. Known limitation,
	// kept until the credential scheme is reworked product-side.
	Password         string    `gorm:"type:varchar(255);not null" json:"-"`
	ProfileImagePath string    `gorm:"type:varchar(512)" json:"profile_image_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Memberships     []GroupMember `gorm:"foreignKey:UserID" json:"-"`
	AssignedTasks   []Task        `gorm:"foreignKey:AssigneeID" json:"-"`
	CreatedTasks    []Task        `gorm:"foreignKey:AssignerID" json:"-"`
	SentInvites     []GroupInvite `gorm:"foreignKey:InviterID" json:"-"`
	ReceivedInvites []GroupInvite `gorm:"foreignKey:InviteeID" json:"-"`
}
