package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock-insight/internal/api/models"
	"stock-insight/internal/portfolio"
)

// PortfolioHandler serves the two allocators.
type PortfolioHandler struct{}

func NewPortfolioHandler() *PortfolioHandler {
	return &PortfolioHandler{}
}

// Sharpe handles GET /api/v1/portfolio/sharpe
func (h *PortfolioHandler) Sharpe(c *gin.Context) {
	res, err := portfolio.OptimizeSharpe(portfolio.DefaultUniverse())
	if err != nil {
		badRequest(c, "ALLOCATION_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.PortfolioResponse{Sharpe: &res})
}

// Views handles POST /api/v1/portfolio/views
func (h *PortfolioHandler) Views(c *gin.Context) {
	var req models.ViewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	res, err := portfolio.BlendViews(portfolio.DefaultMarket(), req.Views)
	if err != nil {
		badRequest(c, "ALLOCATION_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.PortfolioResponse{Blended: &res})
}
