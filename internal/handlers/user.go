package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/constants"
	"github.com/hmorita/group-task-api/internal/logger"
	"github.com/hmorita/group-task-api/internal/middleware"
	"github.com/hmorita/group-task-api/internal/services"
)

// UserHandler coordinates user account HTTP handlers.
type UserHandler struct {
	userService *services.UserService
	log         *logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// Signup registers a new user.
func (h *UserHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	userID, err := h.userService.Create(services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.log, "signup", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

// Login verifies credentials and initializes the session.
func (h *UserHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, "login", err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		respondError(c, h.log, "login", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout clears the session.
func (h *UserHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, h.log, "logout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetCurrentUser returns the user recorded in the session.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c)
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		respondError(c, h.log, "current_user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Edit overwrites a user's account fields.
func (h *UserHandler) Edit(c *gin.Context) {
	type EditRequest struct {
		UserID      string `json:"user_id" binding:"required"`
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Password    string `json:"password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}

	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	err := h.userService.Edit(services.EditUserInput{
		UserID:      req.UserID,
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		respondError(c, h.log, "edit_user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// Delete removes a user account and everything that depends on it.
func (h *UserHandler) Delete(c *gin.Context) {
	type DeleteRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	if err := h.userService.Delete(req.UserID, req.Password); err != nil {
		respondError(c, h.log, "delete_user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
