package services

import (
	"os"
	"strings"
	"testing"

	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestImageService_UploadRejectsBadExtension(t *testing.T) {
	db := setupTestDB(t)
	svc := NewImageService(db, t.TempDir())
	aliceID := mustCreateUser(t, db, "alice")

	_, err := svc.UploadUserImage(aliceID, testPassword, "malware.exe", strings.NewReader("x"))
	require.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestImageService_UserImageLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewImageService(db, t.TempDir())
	aliceID := mustCreateUser(t, db, "alice")

	_, err := svc.GetUserImage(aliceID, testPassword)
	require.ErrorIs(t, err, apperrors.ErrImageNotFound)

	path, err := svc.UploadUserImage(aliceID, testPassword, "avatar.png", strings.NewReader("pngdata"))
	require.NoError(t, err)
	require.FileExists(t, path)

	var user models.User
	require.NoError(t, db.Where("id = ?", aliceID).First(&user).Error)
	require.Equal(t, path, user.ProfileImagePath)

	got, err := svc.GetUserImage(aliceID, testPassword)
	require.NoError(t, err)
	require.Equal(t, path, got)

	// Replacing the image removes the previous file.
	newPath, err := svc.UploadUserImage(aliceID, testPassword, "avatar2.png", strings.NewReader("pngdata2"))
	require.NoError(t, err)
	require.FileExists(t, newPath)
	require.NoFileExists(t, path)

	require.NoError(t, svc.RemoveUserImage(aliceID, testPassword))
	require.NoFileExists(t, newPath)

	require.NoError(t, db.Where("id = ?", aliceID).First(&user).Error)
	require.Empty(t, user.ProfileImagePath)

	// Removing again is tolerated.
	require.NoError(t, svc.RemoveUserImage(aliceID, testPassword))
}

func TestImageService_TaskImage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewImageService(db, t.TempDir())
	aliceID := mustCreateUser(t, db, "alice")
	taskID := mustCreateTask(t, db, aliceID, aliceID, nil)

	_, err := svc.GetTaskImage(aliceID, testPassword, taskID)
	require.ErrorIs(t, err, apperrors.ErrImageNotFound)

	path, err := svc.UploadTaskImage(aliceID, testPassword, taskID, "sketch.jpg", strings.NewReader("jpgdata"))
	require.NoError(t, err)
	require.FileExists(t, path)

	got, err := svc.GetTaskImage(aliceID, testPassword, taskID)
	require.NoError(t, err)
	require.Equal(t, path, got)

	// A recorded path whose file vanished reads as missing.
	require.NoError(t, os.Remove(path))
	_, err = svc.GetTaskImage(aliceID, testPassword, taskID)
	require.ErrorIs(t, err, apperrors.ErrImageNotFound)

	_, err = svc.UploadTaskImage(aliceID, testPassword, "missing", "sketch.jpg", strings.NewReader("x"))
	require.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}
