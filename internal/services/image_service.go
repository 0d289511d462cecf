package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/guard"
	"github.com/hmorita/group-task-api/internal/repository"
	"github.com/hmorita/group-task-api/internal/utils"
	"gorm.io/gorm"
)

// ImageService stores profile and task images on the local filesystem and
// keeps the recorded path in sync with the owning row.
type ImageService struct {
	db        *gorm.DB
	uploadDir string
}

// NewImageService creates a new ImageService rooted at uploadDir.
func NewImageService(db *gorm.DB, uploadDir string) *ImageService {
	return &ImageService{db: db, uploadDir: uploadDir}
}

// removeFileIfExists deletes a file, treating an already-absent path as
// success.
func removeFileIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *ImageService) storeFile(subdir, ownerID, filename string, src io.Reader) (string, error) {
	if !utils.AllowedImageFile(filename) {
		return "", apperrors.ErrInvalidFileType
	}
	dir := filepath.Join(s.uploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload dir: %w", err)
	}
	path := filepath.Join(dir, ownerID+"_"+utils.SanitizeFilename(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return path, nil
}

// UploadUserImage stores a profile image and records its path on the user.
// Any previous image file is removed.
func (s *ImageService) UploadUserImage(userID, password, filename string, src io.Reader) (string, error) {
	var path string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, userID, password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}

		repo := repository.NewUserRepository(tx)
		user, err := repo.FindByID(userID)
		if err != nil {
			return err
		}
		path, err = s.storeFile("users", userID, filename, src)
		if err != nil {
			return err
		}
		if user.ProfileImagePath != "" && user.ProfileImagePath != path {
			if err := removeFileIfExists(user.ProfileImagePath); err != nil {
				return apperrors.ErrImageDelete
			}
		}
		user.ProfileImagePath = path
		return repo.Update(user)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// UploadTaskImage stores a task image and records its path on the task.
func (s *ImageService) UploadTaskImage(userID, password, taskID, filename string, src io.Reader) (string, error) {
	var path string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, userID, password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}
		ok, err = guard.TaskExists(tx, taskID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrTaskNotFound
		}

		repo := repository.NewTaskRepository(tx)
		task, err := repo.FindByID(taskID)
		if err != nil {
			return err
		}
		path, err = s.storeFile("tasks", taskID, filename, src)
		if err != nil {
			return err
		}
		if task.ImagePath != "" && task.ImagePath != path {
			if err := removeFileIfExists(task.ImagePath); err != nil {
				return apperrors.ErrImageDelete
			}
		}
		task.ImagePath = path
		return repo.Update(task)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// GetUserImage returns the path of the user's profile image.
func (s *ImageService) GetUserImage(userID, password string) (string, error) {
	ok, err := guard.UserExists(s.db, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrUserNotFound
	}
	ok, err = guard.PasswordMatches(s.db, userID, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrWrongPassword
	}

	user, err := repository.NewUserRepository(s.db).FindByID(userID)
	if err != nil {
		return "", err
	}
	if user.ProfileImagePath == "" {
		return "", apperrors.ErrImageNotFound
	}
	if _, err := os.Stat(user.ProfileImagePath); err != nil {
		return "", apperrors.ErrImageNotFound
	}
	return user.ProfileImagePath, nil
}

// GetTaskImage returns the path of a task's image.
func (s *ImageService) GetTaskImage(userID, password, taskID string) (string, error) {
	ok, err := guard.UserExists(s.db, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrUserNotFound
	}
	ok, err = guard.PasswordMatches(s.db, userID, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrWrongPassword
	}
	ok, err = guard.TaskExists(s.db, taskID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrTaskNotFound
	}

	task, err := repository.NewTaskRepository(s.db).FindByID(taskID)
	if err != nil {
		return "", err
	}
	if task.ImagePath == "" {
		return "", apperrors.ErrImageNotFound
	}
	if _, err := os.Stat(task.ImagePath); err != nil {
		return "", apperrors.ErrImageNotFound
	}
	return task.ImagePath, nil
}

// RemoveUserImage deletes the user's profile image file, tolerating an
// already-absent file, and clears the recorded path.
func (s *ImageService) RemoveUserImage(userID, password string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, userID, password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}

		repo := repository.NewUserRepository(tx)
		user, err := repo.FindByID(userID)
		if err != nil {
			return err
		}
		if user.ProfileImagePath != "" {
			if err := removeFileIfExists(user.ProfileImagePath); err != nil {
				return apperrors.ErrImageDelete
			}
		}
		user.ProfileImagePath = ""
		return repo.Update(user)
	})
}
