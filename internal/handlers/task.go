package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/logger"
	"github.com/hmorita/group-task-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
	log         *logger.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, log *logger.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, log: log}
}

// taskRequest is the wire shape shared by Add and Edit. The group field keeps
// accepting the legacy "0" sentinel for personal tasks.
type taskRequest struct {
	TaskID      string    `json:"task_id"`
	Name        string    `json:"task_name" binding:"required"`
	Description string    `json:"description"`
	Due         time.Time `json:"due" binding:"required"`
	EstDay      int       `json:"est_day"`
	EstHour     int       `json:"est_hour"`
	EstMin      int       `json:"est_min"`
	AssignerID  string    `json:"assigner_id" binding:"required"`
	AssigneeID  string    `json:"assignee_id" binding:"required"`
	GroupID     string    `json:"group_id"`
	Password    string    `json:"password" binding:"required"`
	Priority    int       `json:"priority"`
	Recursive   bool      `json:"recursive"`
	Completed   bool      `json:"completed"`
	ImagePath   string    `json:"image_path"`
}

func (r taskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		TaskID:      r.TaskID,
		Name:        r.Name,
		Description: r.Description,
		Due:         r.Due,
		EstDay:      r.EstDay,
		EstHour:     r.EstHour,
		EstMin:      r.EstMin,
		AssignerID:  r.AssignerID,
		AssigneeID:  r.AssigneeID,
		GroupID:     normalizeGroupID(r.GroupID),
		Password:    r.Password,
		Priority:    r.Priority,
		Recursive:   r.Recursive,
		Completed:   r.Completed,
		ImagePath:   r.ImagePath,
	}
}

// Add creates a task.
func (h *TaskHandler) Add(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	taskID, err := h.taskService.Add(req.toInput())
	if err != nil {
		respondError(c, h.log, "add_task", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task_id": taskID})
}

// Edit overwrites a task's mutable fields.
func (h *TaskHandler) Edit(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TaskID == "" {
		apperrors.BadRequest(c)
		return
	}

	if err := h.taskService.Edit(req.toInput()); err != nil {
		respondError(c, h.log, "edit_task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	type DeleteRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		TaskID   string `json:"task_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	if err := h.taskService.Delete(req.UserID, req.TaskID, req.Password); err != nil {
		respondError(c, h.log, "delete_task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// ListUser returns the caller's assigned tasks.
func (h *TaskHandler) ListUser(c *gin.Context) {
	type ListRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	tasks, err := h.taskService.ListForUser(req.UserID, req.Password)
	if err != nil {
		respondError(c, h.log, "list_user_tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListGroup returns a group's tasks. Members only.
func (h *TaskHandler) ListGroup(c *gin.Context) {
	type ListRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		GroupID  string `json:"group_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	tasks, err := h.taskService.ListForGroup(req.UserID, req.GroupID, req.Password)
	if err != nil {
		respondError(c, h.log, "list_group_tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListCompleted returns the completed tasks visible to the caller in a group
// scope.
func (h *TaskHandler) ListCompleted(c *gin.Context) {
	type ListRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		GroupID  string `json:"group_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	tasks, err := h.taskService.ListCompleted(req.UserID, req.GroupID, req.Password)
	if err != nil {
		respondError(c, h.log, "list_completed_tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Toggle sets a task's completed flag.
func (h *TaskHandler) Toggle(c *gin.Context) {
	type ToggleRequest struct {
		UserID    string `json:"user_id" binding:"required"`
		TaskID    string `json:"task_id" binding:"required"`
		Password  string `json:"password" binding:"required"`
		Completed *bool  `json:"completed" binding:"required"`
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	err := h.taskService.ToggleComplete(req.TaskID, req.UserID, req.Password, *req.Completed)
	if err != nil {
		respondError(c, h.log, "toggle_task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
