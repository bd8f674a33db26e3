package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock-insight/internal/api/models"
	"stock-insight/internal/config"
	"stock-insight/internal/montecarlo"
	"stock-insight/internal/session"
)

// SimulationHandler runs Monte Carlo simulations.
type SimulationHandler struct {
	cfg   *config.Config
	store *session.Store
}

func NewSimulationHandler(cfg *config.Config, store *session.Store) *SimulationHandler {
	return &SimulationHandler{cfg: cfg, store: store}
}

// Simulate handles POST /api/v1/simulate
//
// The run is synchronous: the response carries the complete result, and a
// session sees either its previous simulation or this one, never a blend.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	if req.Paths == 0 {
		req.Paths = h.cfg.Simulation.Paths
	}
	if req.HorizonDays == 0 {
		req.HorizonDays = h.cfg.Simulation.HorizonDays
	}

	rng, seed := newRNG(req.Seed)

	if req.SessionID != "" {
		st, err := h.store.Get(req.SessionID)
		if err != nil {
			errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
			return
		}
		st, err = session.RunSimulation(st, rng, req.StartPrice, req.Paths, req.HorizonDays)
		if err != nil {
			badRequest(c, "INVALID_SIMULATION_INPUT", err.Error())
			return
		}
		if err := h.store.Put(st); err != nil {
			errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
			return
		}
		start := req.StartPrice
		if start == 0 {
			start = st.LastClose()
		}
		c.JSON(http.StatusOK, models.SimulateResponse{
			StartPrice: start,
			Seed:       seed,
			Result:     *st.Simulation,
		})
		return
	}

	res, err := montecarlo.Simulate(rng, req.StartPrice, req.Paths, req.HorizonDays, nil)
	if err != nil {
		badRequest(c, "INVALID_SIMULATION_INPUT", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		StartPrice: req.StartPrice,
		Seed:       seed,
		Result:     res,
	})
}
