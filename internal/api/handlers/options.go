package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock-insight/internal/api/models"
	"stock-insight/internal/config"
	"stock-insight/internal/model"
	"stock-insight/internal/pricing"
	"stock-insight/internal/session"
)

// OptionsHandler prices option quotes.
type OptionsHandler struct {
	cfg   *config.Config
	store *session.Store
}

func NewOptionsHandler(cfg *config.Config, store *session.Store) *OptionsHandler {
	return &OptionsHandler{cfg: cfg, store: store}
}

// PriceOption handles POST /api/v1/options/price
func (h *OptionsHandler) PriceOption(c *gin.Context) {
	var req models.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	if req.RatePercent == 0 {
		req.RatePercent = h.cfg.Pricing.RatePercent
	}
	if req.VolPercent == 0 {
		req.VolPercent = h.cfg.Pricing.VolPercent
	}

	var quote model.OptionQuote
	if req.SessionID != "" {
		// Session path: spot defaults to the latest close and the quote is
		// stored on the session.
		st, err := h.store.Get(req.SessionID)
		if err != nil {
			errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
			return
		}
		st, err = session.PriceOption(st, req.Spot, req.Strike, req.Days, req.RatePercent, req.VolPercent)
		if err != nil {
			badRequest(c, "INVALID_PRICING_INPUT", err.Error())
			return
		}
		if err := h.store.Put(st); err != nil {
			errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
			return
		}
		quote = *st.Quote
		if req.Spot == 0 {
			req.Spot = st.LastClose()
		}
	} else {
		q, err := pricing.Price(req.Spot, req.Strike, req.Days, req.RatePercent, req.VolPercent)
		if err != nil {
			badRequest(c, "INVALID_PRICING_INPUT", err.Error())
			return
		}
		quote = q
	}

	c.JSON(http.StatusOK, models.PriceResponse{
		Spot:        req.Spot,
		Strike:      req.Strike,
		Days:        req.Days,
		RatePercent: req.RatePercent,
		VolPercent:  req.VolPercent,
		Quote:       quote,
	})
}
