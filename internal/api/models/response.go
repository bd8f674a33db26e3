package models

import (
	"stock-insight/internal/backtest"
	"stock-insight/internal/model"
)

// AnalyzeResponse returns a generated, annotated series.
type AnalyzeResponse struct {
	Symbol string             `json:"symbol"`
	Days   int                `json:"days"`
	Seed   int64              `json:"seed"`
	Series []model.PricePoint `json:"series"`
}

// PriceResponse wraps an option quote with its resolved inputs.
type PriceResponse struct {
	Spot        float64           `json:"spot"`
	Strike      float64           `json:"strike"`
	Days        float64           `json:"days"`
	RatePercent float64           `json:"rate_percent"`
	VolPercent  float64           `json:"vol_percent"`
	Quote       model.OptionQuote `json:"quote"`
}

// SimulateResponse wraps a Monte Carlo result.
type SimulateResponse struct {
	StartPrice float64                `json:"start_price"`
	Seed       int64                  `json:"seed"`
	Result     model.SimulationResult `json:"result"`
}

// PortfolioResponse returns one or both allocations.
type PortfolioResponse struct {
	Sharpe  *model.AllocationResult `json:"sharpe,omitempty"`
	Blended *model.AllocationResult `json:"blended,omitempty"`
}

// BacktestSummary contains aggregated backtest results.
type BacktestSummary struct {
	Strategy      string  `json:"strategy"`
	Points        int     `json:"points"`
	FinalValue    float64 `json:"final_value"`
	ReturnPercent float64 `json:"return_percent"`

	Metrics *model.RiskMetrics `json:"metrics,omitempty"`
}

// BacktestResponse represents the response from a backtest run.
type BacktestResponse struct {
	Status   string                 `json:"status"`
	Summary  BacktestSummary        `json:"summary"`
	Baseline *BacktestSummary       `json:"baseline,omitempty"` // buy-and-hold comparison
	Trace    []model.BacktestRecord `json:"trace,omitempty"`
	Ledger   []backtest.LedgerRow   `json:"ledger,omitempty"`
}

// RankResponse returns catalog symbols ordered by Sharpe ratio.
type RankResponse struct {
	Days     int                     `json:"days"`
	Rankings []backtest.RankedSymbol `json:"rankings"`
}

// UploadResponse reports what was ingested.
type UploadResponse struct {
	SessionID string `json:"session_id"`
	Rows      int    `json:"rows"`
	Points    int    `json:"points"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
