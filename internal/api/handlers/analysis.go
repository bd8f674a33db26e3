package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock-insight/internal/api/models"
	"stock-insight/internal/backtest"
	"stock-insight/internal/config"
	"stock-insight/internal/data"
	"stock-insight/internal/series"
)

// AnalysisHandler serves generated series and the symbol catalog.
type AnalysisHandler struct {
	cfg *config.Config
}

func NewAnalysisHandler(cfg *config.Config) *AnalysisHandler {
	return &AnalysisHandler{cfg: cfg}
}

// ListSymbols handles GET /api/v1/symbols
func (h *AnalysisHandler) ListSymbols(c *gin.Context) {
	symbols := data.List()
	c.JSON(http.StatusOK, gin.H{
		"symbols": symbols,
		"count":   len(symbols),
	})
}

// Analyze handles GET /api/v1/analyze/:symbol
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	symbol := c.Param("symbol")
	days := queryInt(c, "days", h.cfg.Market.Days)
	seed, _ := strconv.ParseInt(c.Query("seed"), 10, 64)

	rng, seed := newRNG(seed)
	pts, err := series.Generate(rng, symbol, days)
	if err != nil {
		badRequest(c, "INVALID_DAYS", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Symbol: symbol,
		Days:   days,
		Seed:   seed,
		Series: pts,
	})
}

// Rank handles GET /api/v1/rank
func (h *AnalysisHandler) Rank(c *gin.Context) {
	days := queryInt(c, "days", h.cfg.Market.Days)

	rankings, err := backtest.RankBySharpe(days)
	if err != nil {
		badRequest(c, "RANK_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.RankResponse{
		Days:     days,
		Rankings: rankings,
	})
}

func queryInt(c *gin.Context, key string, def int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return v
	}
	return def
}
