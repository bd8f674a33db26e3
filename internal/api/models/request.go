package models

// PriceRequest represents the request body for pricing an option.
// Spot may be omitted when a session_id is given: the session's latest
// close is used.
type PriceRequest struct {
	SessionID   string  `json:"session_id,omitempty"`
	Spot        float64 `json:"spot,omitempty"`
	Strike      float64 `json:"strike" binding:"required"`
	Days        float64 `json:"days" binding:"required"`
	RatePercent float64 `json:"rate_percent"`
	VolPercent  float64 `json:"vol_percent"`
}

// SimulateRequest represents the request body for a Monte Carlo run.
type SimulateRequest struct {
	SessionID   string  `json:"session_id,omitempty"`
	StartPrice  float64 `json:"start_price,omitempty"`
	Paths       int     `json:"paths,omitempty"`        // default from config
	HorizonDays int     `json:"horizon_days,omitempty"` // default from config
	Seed        int64   `json:"seed,omitempty"`         // 0 = time-derived
}

// ViewsRequest carries the subjective return views for the blended
// allocator, keyed by asset name.
type ViewsRequest struct {
	Views map[string]float64 `json:"views" binding:"required"`
}

// BacktestRequest represents the request body for running a backtest.
// Exactly one of SessionID or Symbol selects the series.
type BacktestRequest struct {
	SessionID      string  `json:"session_id,omitempty"`
	Symbol         string  `json:"symbol,omitempty"`
	Days           int     `json:"days,omitempty"`
	Seed           int64   `json:"seed,omitempty"`
	InitialCapital float64 `json:"initial_capital,omitempty"`
	IncludeLedger  bool    `json:"include_ledger,omitempty"`
}

// SessionRequest creates or re-targets a session.
type SessionRequest struct {
	Symbol string `json:"symbol,omitempty"`
	Days   int    `json:"days,omitempty"`
	Seed   int64  `json:"seed,omitempty"`
}
