package dto

import (
	"time"

	"github.com/hmorita/group-task-api/internal/constants"
	"github.com/hmorita/group-task-api/internal/models"
)

// TaskDTO represents a task in API responses. GroupID keeps the legacy "0"
// wire value for personal tasks.
type TaskDTO struct {
	TaskID           string    `json:"task_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Due              time.Time `json:"due"`
	EstDay           int       `json:"est_day"`
	EstHour          int       `json:"est_hour"`
	EstMin           int       `json:"est_min"`
	AssignerID       string    `json:"assigner_id"`
	AssignerUsername string    `json:"assigner_username"`
	AssigneeID       string    `json:"assignee_id"`
	GroupID          string    `json:"group_id"`
	Completed        bool      `json:"completed"`
	Priority         int       `json:"priority"`
	Recursive        bool      `json:"recursive"`
	ImagePath        string    `json:"image_path,omitempty"`
}

// ToTaskDTO converts a task (assigner preloaded) to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	groupID := constants.NoGroupSentinel
	if task.GroupID != nil {
		groupID = *task.GroupID
	}
	return TaskDTO{
		TaskID:           task.ID,
		Name:             task.Name,
		Description:      task.Description,
		Due:              task.Due,
		EstDay:           task.EstDay,
		EstHour:          task.EstHour,
		EstMin:           task.EstMin,
		AssignerID:       task.AssignerID,
		AssignerUsername: task.Assigner.Username,
		AssigneeID:       task.AssigneeID,
		GroupID:          groupID,
		Completed:        task.Completed,
		Priority:         task.Priority,
		Recursive:        task.Recursive,
		ImagePath:        task.ImagePath,
	}
}

// ToTaskDTOMap converts tasks to the id-keyed map shape list endpoints return
func ToTaskDTOMap(tasks []models.Task) map[string]TaskDTO {
	result := make(map[string]TaskDTO, len(tasks))
	for _, task := range tasks {
		result[task.ID] = ToTaskDTO(task)
	}
	return result
}
