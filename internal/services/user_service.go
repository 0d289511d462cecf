package services

import (
	"errors"
	"fmt"

	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/dto"
	"github.com/hmorita/group-task-api/internal/guard"
	"github.com/hmorita/group-task-api/internal/models"
	"github.com/hmorita/group-task-api/internal/repository"
	"github.com/hmorita/group-task-api/internal/utils"
	"gorm.io/gorm"
)

// UserService handles the user aggregate. Every mutation runs its guard
// checks and writes inside one transaction, in a fixed order, so callers see
// deterministic error codes and never a partially applied operation.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserInput represents the required information to create a new user.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// Create registers a new user and returns its generated id.
func (s *UserService) Create(input CreateUserInput) (string, error) {
	var userID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		id, err := utils.NewID(tx, "user")
		if err != nil {
			return err
		}
		taken, err := guard.UsernameTaken(tx, input.Username)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrUsernameTaken
		}
		taken, err = guard.EmailTaken(tx, input.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrEmailTaken
		}

		userID = id
		return repository.NewUserRepository(tx).Create(&models.User{
			ID:       id,
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
		})
	})
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Login verifies credentials and returns the matching user's id and name.
func (s *UserService) Login(email, password string) (dto.UserDTO, error) {
	ok, err := guard.LoginMatches(s.db, email, password)
	if err != nil {
		return dto.UserDTO{}, err
	}
	if !ok {
		return dto.UserDTO{}, apperrors.ErrBadCredentials
	}

	user, err := repository.NewUserRepository(s.db).FindByEmail(email)
	if err != nil {
		return dto.UserDTO{}, fmt.Errorf("failed to load user after login: %w", err)
	}
	return dto.ToUserDTO(*user), nil
}

// GetByID returns a user by id.
func (s *UserService) GetByID(userID string) (dto.UserDTO, error) {
	user, err := repository.NewUserRepository(s.db).FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserDTO{}, apperrors.ErrUserNotFound
		}
		return dto.UserDTO{}, fmt.Errorf("failed to load user: %w", err)
	}
	return dto.ToUserDTO(*user), nil
}

// EditUserInput carries the fields an edit overwrites.
type EditUserInput struct {
	UserID      string
	Username    string
	Email       string
	Password    string
	NewPassword string
}

// Edit overwrites username, email, and password after re-validating
// uniqueness and the current password.
//
// The uniqueness checks do not exempt the caller's own current values, so a
// no-op edit conflicts with itself. Kept as shipped pending product
// clarification.
func (s *UserService) Edit(input EditUserInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, input.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		taken, err := guard.UsernameTaken(tx, input.Username)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrUsernameTaken
		}
		taken, err = guard.EmailTaken(tx, input.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrEmailTaken
		}
		ok, err = guard.PasswordMatches(tx, input.UserID, input.Password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}

		repo := repository.NewUserRepository(tx)
		user, err := repo.FindByID(input.UserID)
		if err != nil {
			return err
		}
		user.Username = input.Username
		user.Email = input.Email
		user.Password = input.NewPassword
		return repo.Update(user)
	})
}

// Delete removes the user and cascades to memberships, tasks the user
// assigned or was assigned, and invites the user sent or received. Groups the
// user owns are left in place with their recorded owner_id.
func (s *UserService) Delete(userID, password string) error {
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
		return repo.DeleteCascade(userID)
	})
}
