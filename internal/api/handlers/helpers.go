package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stock-insight/internal/api/models"
)

// errorJSON writes the standard error envelope.
func errorJSON(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func badRequest(c *gin.Context, code, message string) {
	errorJSON(c, http.StatusBadRequest, code, message)
}

// newRNG builds a seeded generator. Seed 0 means "derive from time"; the
// effective seed is returned so responses can report it for reproduction.
func newRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
