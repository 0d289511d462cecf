package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/logger"
	"github.com/hmorita/group-task-api/internal/services"
)

// InviteHandler coordinates group invite HTTP handlers.
type InviteHandler struct {
	inviteService *services.InviteService
	log           *logger.Logger
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(inviteService *services.InviteService, log *logger.Logger) *InviteHandler {
	return &InviteHandler{inviteService: inviteService, log: log}
}

// Create issues a pending invite from a group member to an outside user.
func (h *InviteHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		UserID    string `json:"user_id" binding:"required"`
		InviteeID string `json:"invitee_id" binding:"required"`
		GroupID   string `json:"group_id" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	inviteID, err := h.inviteService.Create(services.CreateInviteInput{
		InviterID: req.UserID,
		InviteeID: req.InviteeID,
		GroupID:   req.GroupID,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, h.log, "create_invite", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invite_id": inviteID})
}

// Pending returns the pending invites addressed to the caller.
func (h *InviteHandler) Pending(c *gin.Context) {
	type PendingRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req PendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	invites, err := h.inviteService.ListPending(req.UserID, req.Password)
	if err != nil {
		respondError(c, h.log, "pending_invites", err)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// Sent returns the invites a group has issued. Members only.
func (h *InviteHandler) Sent(c *gin.Context) {
	type SentRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		GroupID  string `json:"group_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req SentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	invites, err := h.inviteService.ListSent(req.UserID, req.GroupID, req.Password)
	if err != nil {
		respondError(c, h.log, "sent_invites", err)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// Respond accepts or rejects a pending invite. Invitee only. The invite may
// be addressed by invite_id or implicitly by (user, group).
func (h *InviteHandler) Respond(c *gin.Context) {
	type RespondRequest struct {
		UserID   string `json:"user_id" binding:"required"`
		GroupID  string `json:"group_id" binding:"required"`
		InviteID string `json:"invite_id"`
		Password string `json:"password" binding:"required"`
		Accept   *bool  `json:"accept" binding:"required"`
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	err := h.inviteService.Respond(services.RespondInviteInput{
		UserID:   req.UserID,
		GroupID:  req.GroupID,
		InviteID: req.InviteID,
		Password: req.Password,
		Accept:   *req.Accept,
	})
	if err != nil {
		respondError(c, h.log, "respond_invite", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// Delete withdraws the invite for (invitee, group). Any group member may do
// this.
func (h *InviteHandler) Delete(c *gin.Context) {
	type DeleteRequest struct {
		UserID    string `json:"user_id" binding:"required"`
		InviteeID string `json:"invitee_id" binding:"required"`
		GroupID   string `json:"group_id" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c)
		return
	}

	err := h.inviteService.Delete(services.DeleteInviteInput{
		ActorID:   req.UserID,
		InviteeID: req.InviteeID,
		GroupID:   req.GroupID,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, h.log, "delete_invite", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
