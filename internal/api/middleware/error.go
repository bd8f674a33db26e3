package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stock-insight/internal/api/models"
)

// ErrorHandler recovers panics into the standard error envelope and logs
// them through the API logger.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case error:
			message = v.Error()
		case string:
			message = v
		}

		log.Error("panic recovered",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("panic", fmt.Sprint(recovered)),
		)

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
				Details: map[string]interface{}{"path": c.Request.URL.Path},
			},
		})
	})
}
