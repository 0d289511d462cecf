// Package guard holds the authorization and existence predicates the domain
// controllers run before any mutation. Every predicate is a single lookup on
// the handle it is given, has no side effects, and fails closed: a storage
// error comes back as an error, never as a silent false.
package guard

import (
	"errors"
	"fmt"

	"github.com/hmorita/group-task-api/internal/models"
	"gorm.io/gorm"
)

// exists runs a filtered count-limited lookup and maps ErrRecordNotFound to
// (false, nil). Any other error is an infrastructure failure.
func exists(query *gorm.DB, dest interface{}) (bool, error) {
	err := query.First(dest).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("guard lookup failed: %w", err)
}

// UserExists reports whether a user row with the given id is present.
func UserExists(db *gorm.DB, userID string) (bool, error) {
	var user models.User
	return exists(db.Where("id = ?", userID), &user)
}

// GroupExists reports whether a group row with the given id is present.
func GroupExists(db *gorm.DB, groupID string) (bool, error) {
	var group models.Group
	return exists(db.Where("id = ?", groupID), &group)
}

// TaskExists reports whether a task row with the given id is present.
func TaskExists(db *gorm.DB, taskID string) (bool, error) {
	var task models.Task
	return exists(db.Where("id = ?", taskID), &task)
}

// UserInGroup reports whether a membership row links the user to the group.
func UserInGroup(db *gorm.DB, userID, groupID string) (bool, error) {
	var member models.GroupMember
	return exists(db.Where("user_id = ? AND group_id = ?", userID, groupID), &member)
}

// PasswordMatches compares the stored password for the user against the given
// one. Exact string comparison; see the limitation note on models.User.
func PasswordMatches(db *gorm.DB, userID, password string) (bool, error) {
	var user models.User
	return exists(db.Where("id = ? AND password = ?", userID, password), &user)
}

// LoginMatches reports whether an (email, password) pair identifies a user.
func LoginMatches(db *gorm.DB, email, password string) (bool, error) {
	var user models.User
	return exists(db.Where("email = ? AND password = ?", email, password), &user)
}

// UsernameTaken reports whether any user already holds the username.
func UsernameTaken(db *gorm.DB, username string) (bool, error) {
	var user models.User
	return exists(db.Where("username = ?", username), &user)
}

// EmailTaken reports whether any user already holds the email.
func EmailTaken(db *gorm.DB, email string) (bool, error) {
	var user models.User
	return exists(db.Where("email = ?", email), &user)
}

// IDTaken reports whether the candidate id collides with a live row of the
// named table. Used only by the id generation retry loop.
func IDTaken(db *gorm.DB, table, id string) (bool, error) {
	switch table {
	case "user":
		return UserExists(db, id)
	case "group":
		return GroupExists(db, id)
	case "task":
		return TaskExists(db, id)
	case "invite":
		var invite models.GroupInvite
		return exists(db.Where("invite_id = ?", id), &invite)
	default:
		return false, fmt.Errorf("guard: unknown table %q", table)
	}
}

// InviteByID fetches an invite row by primary key, reporting presence.
func InviteByID(db *gorm.DB, inviteID string) (*models.GroupInvite, bool, error) {
	var invite models.GroupInvite
	ok, err := exists(db.Where("invite_id = ?", inviteID), &invite)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &invite, true, nil
}

// PendingInvite fetches the pending invite for (invitee, group), if any.
// At most one can exist; the create path enforces that.
func PendingInvite(db *gorm.DB, inviteeID, groupID string) (*models.GroupInvite, bool, error) {
	var invite models.GroupInvite
	ok, err := exists(
		db.Where("invitee_id = ? AND group_id = ? AND status = ?",
			inviteeID, groupID, models.InviteStatusPending),
		&invite,
	)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &invite, true, nil
}
