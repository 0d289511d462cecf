package services

import (
	"time"

	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/dto"
	"github.com/hmorita/group-task-api/internal/guard"
	"github.com/hmorita/group-task-api/internal/models"
	"github.com/hmorita/group-task-api/internal/repository"
	"github.com/hmorita/group-task-api/internal/utils"
	"gorm.io/gorm"
)

// TaskService handles the task aggregate.
type TaskService struct {
	db *gorm.DB
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// TaskInput carries the full mutable field set of a task. GroupID nil means a
// personal task.
type TaskInput struct {
	TaskID      string
	Name        string
	Description string
	Due         time.Time
	EstDay      int
	EstHour     int
	EstMin      int
	AssignerID  string
	AssigneeID  string
	GroupID     *string
	Password    string
	Priority    int
	Recursive   bool
	Completed   bool
	ImagePath   string
}

// checkTaskParties verifies assigner, assignee, and (when set) group, then
// the assigner's password, in that order.
func checkTaskParties(tx *gorm.DB, input TaskInput) error {
	ok, err := guard.UserExists(tx, input.AssignerID)
	if err != nil {
		return err
	}
	if ok {
		ok, err = guard.UserExists(tx, input.AssigneeID)
		if err != nil {
			return err
		}
	}
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if input.GroupID != nil {
		ok, err = guard.GroupExists(tx, *input.GroupID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrGroupNotFound
		}
	}
	ok, err = guard.PasswordMatches(tx, input.AssignerID, input.Password)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrWrongPassword
	}
	return nil
}

// Add creates a task, never completed at birth.
func (s *TaskService) Add(input TaskInput) (string, error) {
	var taskID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkTaskParties(tx, input); err != nil {
			return err
		}
		id, err := utils.NewID(tx, "task")
		if err != nil {
			return err
		}
		taskID = id
		return repository.NewTaskRepository(tx).Create(&models.Task{
			ID:          id,
			Name:        input.Name,
			Description: input.Description,
			Due:         input.Due,
			EstDay:      input.EstDay,
			EstHour:     input.EstHour,
			EstMin:      input.EstMin,
			AssignerID:  input.AssignerID,
			AssigneeID:  input.AssigneeID,
			GroupID:     input.GroupID,
			Completed:   false,
			Priority:    input.Priority,
			Recursive:   input.Recursive,
			ImagePath:   input.ImagePath,
		})
	})
	if err != nil {
		return "", err
	}
	return taskID, nil
}

// Edit overwrites every mutable field of an existing task, including the
// completed flag.
func (s *TaskService) Edit(input TaskInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.TaskExists(tx, input.TaskID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrTaskNotFound
		}
		if err := checkTaskParties(tx, input); err != nil {
			return err
		}

		repo := repository.NewTaskRepository(tx)
		task, err := repo.FindByID(input.TaskID)
		if err != nil {
			return err
		}
		task.Name = input.Name
		task.Description = input.Description
		task.Due = input.Due
		task.EstDay = input.EstDay
		task.EstHour = input.EstHour
		task.EstMin = input.EstMin
		task.AssignerID = input.AssignerID
		task.AssigneeID = input.AssigneeID
		task.GroupID = input.GroupID
		task.Completed = input.Completed
		task.Priority = input.Priority
		task.Recursive = input.Recursive
		task.ImagePath = input.ImagePath
		return repo.Update(task)
	})
}

// Delete removes a task after verifying the caller's password.
//
// No check ties the caller to the task (assigner, assignee, or group
// membership). Kept as shipped pending product clarification.
func (s *TaskService) Delete(userID, taskID, password string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.TaskExists(tx, taskID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrTaskNotFound
		}
		ok, err = guard.PasswordMatches(tx, userID, password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}
		return repository.NewTaskRepository(tx).Delete(taskID)
	})
}

// ListForUser returns the tasks assigned to a user, keyed by task id.
func (s *TaskService) ListForUser(userID, password string) (map[string]dto.TaskDTO, error) {
	ok, err := guard.UserExists(s.db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	ok, err = guard.PasswordMatches(s.db, userID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrWrongPassword
	}

	tasks, err := repository.NewTaskRepository(s.db).ListByAssignee(userID)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskDTOMap(tasks), nil
}

// ListForGroup returns a group's tasks. The caller must belong to the group.
func (s *TaskService) ListForGroup(userID, groupID, password string) (map[string]dto.TaskDTO, error) {
	ok, err := guard.UserExists(s.db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	ok, err = guard.PasswordMatches(s.db, userID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrWrongPassword
	}
	ok, err = guard.GroupExists(s.db, groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrGroupNotFound
	}
	member, err := guard.UserInGroup(s.db, userID, groupID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.ErrNotGroupMember
	}

	tasks, err := repository.NewTaskRepository(s.db).ListByGroup(groupID)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskDTOMap(tasks), nil
}

// ListCompleted returns the completed tasks visible to the user in the given
// group scope. Check order differs from the other listings (membership before
// password); callers depend on the codes, so it stays.
func (s *TaskService) ListCompleted(userID, groupID, password string) (map[string]dto.TaskDTO, error) {
	ok, err := guard.UserExists(s.db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	ok, err = guard.GroupExists(s.db, groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrGroupNotFound
	}
	member, err := guard.UserInGroup(s.db, userID, groupID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.ErrNotGroupMember
	}
	ok, err = guard.PasswordMatches(s.db, userID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrWrongPassword
	}

	tasks, err := repository.NewTaskRepository(s.db).ListCompleted(userID, groupID)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskDTOMap(tasks), nil
}

// ToggleComplete sets the completed flag on a task.
func (s *TaskService) ToggleComplete(taskID, userID, password string, completed bool) error {
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
		ok, err = guard.TaskExists(tx, taskID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrTaskNotFound
		}
		return repository.NewTaskRepository(tx).SetCompleted(taskID, completed)
	})
}
