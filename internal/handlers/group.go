package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/logger"
	"github.com/hmorita/group-task-api/internal/services"
)

// GroupHandler coordinates group HTTP handlers.
type GroupHandler struct {
	groupService *services.GroupService
	log          *logger.Logger
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *services.GroupService, log *logger.Logger) *GroupHandler {
	return &GroupHandler{groupService: groupService, log: log}
}

// Create makes a new group with the caller as owner and first member.
func (h *GroupHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		UserID      string `json:"user_id" binding:"required"`
		Name        string `json:"group_name" binding:"required"`
		Description string `json:"description"`
		Password    string `json:"password" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	groupID, err := h.groupService.Create(services.CreateGroupInput{
		OwnerID:     req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, h.log, "create_group", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"group_id": groupID})
}

// Join adds the caller to an existing group.
func (h *GroupHandler) Join(c *gin.Context) {
	type JoinRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		GroupID  string `json:"group_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	if err := h.groupService.Join(req.UserID, req.GroupID, req.Password); err != nil {
		respondError(c, h.log, "join_group", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// Leave removes the caller from a group, dissolving it when empty.
func (h *GroupHandler) Leave(c *gin.Context) {
	type LeaveRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		GroupID  string `json:"group_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	if err := h.groupService.Leave(req.UserID, req.GroupID, req.Password); err != nil {
		respondError(c, h.log, "leave_group", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// Delete removes a group. Owner only.
func (h *GroupHandler) Delete(c *gin.Context) {
	type DeleteRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		GroupID  string `json:"group_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	if err := h.groupService.Delete(req.UserID, req.GroupID, req.Password); err != nil {
		respondError(c, h.log, "delete_group", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// List returns every group the caller belongs to, with member lists.
func (h *GroupHandler) List(c *gin.Context) {
	type ListRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	groups, err := h.groupService.ListForUser(req.UserID, req.Password)
	if err != nil {
		respondError(c, h.log, "list_groups", err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// Members returns a group's member list. Members only.
func (h *GroupHandler) Members(c *gin.Context) {
	type MembersRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		GroupID  string `json:"group_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req MembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	members, err := h.groupService.ListMembers(req.UserID, req.GroupID, req.Password)
	if err != nil {
		respondError(c, h.log, "group_members", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}
