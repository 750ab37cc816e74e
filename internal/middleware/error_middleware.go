package middleware

import (
	"mascot-chat/internal/transport/httpdto"
	"mascot-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors handlers attached via c.Error into a JSON
// body, logging the detail server-side.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.ErrorfCtx(c.Request.Context(), "request error: %s", err.Error())
		}
		if !c.Writer.Written() {
			c.JSON(c.Writer.Status(), httpdto.ErrorResponse{Error: "internal error"})
		}
	}
}
