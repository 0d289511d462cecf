package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/logger"
)

// Recovery converts a handler panic into the generic infrastructure error
// response instead of tearing down the connection.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered", "panic", r, "path", c.Request.URL.Path)
				apperrors.Respond(c, apperrors.ErrBackendTrouble)
				c.Abort()
			}
		}()
		c.Next()
	}
}
