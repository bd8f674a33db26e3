package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock-insight/internal/ratelimit"
)

// RateLimit rejects requests beyond the limiter's budget with 429.
// Used on the Monte Carlo and upload endpoints, whose latency is
// user-perceptible.
func RateLimit(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "Too many " + l.Name() + " requests, slow down",
				},
			})
			return
		}
		c.Next()
	}
}
