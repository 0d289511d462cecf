package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/logger"
	"github.com/hmorita/group-task-api/internal/services"
)

// ImageHandler coordinates image upload and retrieval handlers. Uploads come
// in as multipart form data with the credentials in form fields.
type ImageHandler struct {
	imageService *services.ImageService
	log          *logger.Logger
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(imageService *services.ImageService, log *logger.Logger) *ImageHandler {
	return &ImageHandler{imageService: imageService, log: log}
}

// UploadUser stores a profile image for the caller.
func (h *ImageHandler) UploadUser(c *gin.Context) {
	userID := c.PostForm("user_id")
	password := c.PostForm("password")
	if userID == "" || password == "" {
		apperrors.Respond(c, apperrors.ErrMissingFields)
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		apperrors.BadRequest(c)
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, h.log, "upload_user_image", err)
		return
	}
	defer src.Close()

	path, err := h.imageService.UploadUserImage(userID, password, file.Filename, src)
	if err != nil {
		respondError(c, h.log, "upload_user_image", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image_path": path})
}

// UploadTask stores an image attached to a task.
func (h *ImageHandler) UploadTask(c *gin.Context) {
	userID := c.PostForm("user_id")
	password := c.PostForm("password")
	taskID := c.PostForm("task_id")
	if userID == "" || password == "" || taskID == "" {
		apperrors.Respond(c, apperrors.ErrMissingFields)
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		apperrors.BadRequest(c)
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, h.log, "upload_task_image", err)
		return
	}
	defer src.Close()

	path, err := h.imageService.UploadTaskImage(userID, password, taskID, file.Filename, src)
	if err != nil {
		respondError(c, h.log, "upload_task_image", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image_path": path})
}

// GetUser serves the caller's profile image file.
func (h *ImageHandler) GetUser(c *gin.Context) {
	type GetRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req GetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	path, err := h.imageService.GetUserImage(req.UserID, req.Password)
	if err != nil {
		respondError(c, h.log, "get_user_image", err)
		return
	}
	c.File(path)
}

// GetTask serves a task's image file.
func (h *ImageHandler) GetTask(c *gin.Context) {
	type GetRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		TaskID   string `json:"task_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req GetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	path, err := h.imageService.GetTaskImage(req.UserID, req.Password, req.TaskID)
	if err != nil {
		respondError(c, h.log, "get_task_image", err)
		return
	}
	c.File(path)
}

// RemoveUser deletes the caller's profile image.
func (h *ImageHandler) RemoveUser(c *gin.Context) {
	type RemoveRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	if err := h.imageService.RemoveUserImage(req.UserID, req.Password); err != nil {
		respondError(c, h.log, "remove_user_image", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
