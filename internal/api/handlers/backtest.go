package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock-insight/internal/api/models"
	"stock-insight/internal/backtest"
	"stock-insight/internal/config"
	"stock-insight/internal/model"
	"stock-insight/internal/series"
	"stock-insight/internal/session"
)

// BacktestHandler handles backtest-related requests.
type BacktestHandler struct {
	cfg   *config.Config
	store *session.Store
}

func NewBacktestHandler(cfg *config.Config, store *session.Store) *BacktestHandler {
	return &BacktestHandler{cfg: cfg, store: store}
}

// RunBacktest handles POST /api/v1/backtest
func (h *BacktestHandler) RunBacktest(c *gin.Context) {
	var req models.BacktestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	if req.InitialCapital == 0 {
		req.InitialCapital = h.cfg.Backtest.InitialCapital
	}
	if req.Days == 0 {
		req.Days = h.cfg.Market.Days
	}

	pts, err := h.resolveSeries(c, &req)
	if err != nil {
		return // resolveSeries wrote the error response
	}

	engine := backtest.New()
	res, err := engine.Run(pts, &backtest.CrossoverStrategy{}, req.InitialCapital)
	if err != nil {
		badRequest(c, "BACKTEST_ERROR", err.Error())
		return
	}

	metrics, err := backtest.ComputeMetrics(pts)
	if err != nil {
		badRequest(c, "METRICS_ERROR", err.Error())
		return
	}

	response := models.BacktestResponse{
		Status: "completed",
		Summary: models.BacktestSummary{
			Strategy:      res.Strategy,
			Points:        len(res.Ledger),
			FinalValue:    res.FinalValue,
			ReturnPercent: res.ReturnPercent,
			Metrics:       &metrics,
		},
		Trace: res.Trace(),
	}
	if req.IncludeLedger {
		response.Ledger = res.Ledger
	}

	// Buy-and-hold over the same series for comparison.
	if base, err := engine.Run(pts, &backtest.BuyAndHoldStrategy{}, req.InitialCapital); err == nil {
		response.Baseline = &models.BacktestSummary{
			Strategy:      base.Strategy,
			Points:        len(base.Ledger),
			FinalValue:    base.FinalValue,
			ReturnPercent: base.ReturnPercent,
		}
	}

	if req.SessionID != "" {
		if st, err := h.store.Get(req.SessionID); err == nil {
			st.Backtest = res.Trace()
			st.Metrics = &metrics
			_ = h.store.Put(st)
		}
	}

	c.JSON(http.StatusOK, response)
}

// resolveSeries picks the session's series or generates one from the
// requested symbol. Writes the error response itself on failure.
func (h *BacktestHandler) resolveSeries(c *gin.Context, req *models.BacktestRequest) ([]model.PricePoint, error) {
	if req.SessionID != "" {
		st, err := h.store.Get(req.SessionID)
		if err != nil {
			errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
			return nil, err
		}
		if len(st.Series) == 0 {
			badRequest(c, "EMPTY_SESSION", "session has no series loaded")
			return nil, session.ErrNotFound
		}
		return st.Series, nil
	}

	if req.Symbol == "" {
		req.Symbol = h.cfg.Market.Symbol
	}
	rng, _ := newRNG(req.Seed)
	pts, err := series.Generate(rng, req.Symbol, req.Days)
	if err != nil {
		badRequest(c, "INVALID_DAYS", err.Error())
		return nil, err
	}
	return pts, nil
}
