package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/constants"
	"github.com/hmorita/group-task-api/internal/logger"
)

// respondError translates a service error into the wire envelope. Domain
// errors pass through with their code; anything else is logged and collapsed
// into the generic infrastructure error.
func respondError(c *gin.Context, log *logger.Logger, op string, err error) {
	if _, ok := err.(*apperrors.DomainError); !ok {
		log.Error("operation failed", "op", op, "error", err)
	}
	apperrors.Respond(c, err)
}

// normalizeGroupID maps the legacy "0" sentinel (and the empty string) to a
// nil group reference.
func normalizeGroupID(raw string) *string {
	if raw == "" || raw == constants.NoGroupSentinel {
		return nil
	}
	return &raw
}
