package services

import (
	"fmt"
	"testing"

	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateGeneratesUniqueIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		id, err := svc.Create(CreateUserInput{
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			Password: testPassword,
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)
		require.False(t, seen[id], "id %q issued twice", id)
		seen[id] = true
	}
}

func TestUserService_CreateRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	mustCreateUser(t, db, "alice")

	_, err := svc.Create(CreateUserInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	_, err = svc.Create(CreateUserInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	aliceID := mustCreateUser(t, db, "alice")

	user, err := svc.Login("alice@example.com", testPassword)
	require.NoError(t, err)
	require.Equal(t, aliceID, user.ID)
	require.Equal(t, "alice", user.Username)

	_, err = svc.Login("alice@example.com", "wrong")
	require.ErrorIs(t, err, apperrors.ErrBadCredentials)

	_, err = svc.Login("nobody@example.com", testPassword)
	require.ErrorIs(t, err, apperrors.ErrBadCredentials)
}

func TestUserService_EditChecksExistenceBeforePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	err := svc.Edit(EditUserInput{
		UserID:      "missing",
		Username:    "ghost",
		Email:       "ghost@example.com",
		Password:    "wrong",
		NewPassword: "whatever",
	})
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_EditConflictsWithOwnValues(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	aliceID := mustCreateUser(t, db, "alice")

	// The uniqueness checks see the caller's own current row, so resubmitting
	// the same username fails.
	err := svc.Edit(EditUserInput{
		UserID:      aliceID,
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    testPassword,
		NewPassword: testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestUserService_EditOverwritesAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	aliceID := mustCreateUser(t, db, "alice")

	err := svc.Edit(EditUserInput{
		UserID:      aliceID,
		Username:    "alice-renamed",
		Email:       "renamed@example.com",
		Password:    testPassword,
		NewPassword: "freshsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login("renamed@example.com", "freshsecret")
	require.NoError(t, err)
	_, err = svc.Login("alice@example.com", testPassword)
	require.ErrorIs(t, err, apperrors.ErrBadCredentials)
}

func TestUserService_DeleteRequiresPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	aliceID := mustCreateUser(t, db, "alice")

	require.ErrorIs(t, svc.Delete(aliceID, "wrong"), apperrors.ErrWrongPassword)
	require.ErrorIs(t, svc.Delete("missing", testPassword), apperrors.ErrUserNotFound)
}

func TestUserService_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	aliceID := mustCreateUser(t, db, "alice")
	bobID := mustCreateUser(t, db, "bob")
	carolID := mustCreateUser(t, db, "carol")

	groupID := mustCreateGroup(t, db, aliceID, "project")
	require.NoError(t, NewGroupService(db).Join(bobID, groupID, testPassword))
	taskID := mustCreateTask(t, db, aliceID, bobID, &groupID)

	_, err := NewInviteService(db).Create(CreateInviteInput{
		InviterID: aliceID,
		InviteeID: carolID,
		GroupID:   groupID,
		Password:  testPassword,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(aliceID, testPassword))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", aliceID).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&models.GroupMember{}).Where("user_id = ?", aliceID).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&models.Task{}).Where("id = ?", taskID).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&models.GroupInvite{}).Where("inviter_id = ?", aliceID).Count(&count).Error)
	require.Zero(t, count)

	// The owned group stays behind, still recording the deleted owner.
	var group models.Group
	require.NoError(t, db.Where("id = ?", groupID).First(&group).Error)
	require.Equal(t, aliceID, group.OwnerID)
	require.NoError(t, db.Model(&models.GroupMember{}).Where("user_id = ?", bobID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
