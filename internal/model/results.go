package model

// OptionQuote is a call/put price pair from the approximate pricer.
// Both legs are floored at the minimum tick (0.01); when neither leg is
// clamped the pair satisfies put = call + K·e^(-rT) - S.
type OptionQuote struct {
	Call float64 `json:"call"`
	Put  float64 `json:"put"`
}

// SimulationResult summarizes a Monte Carlo run over terminal prices.
//
// VaR95/VaR99 are low-percentile terminal *price levels*, not losses.
// The naming is kept for continuity with the dashboard that displays them.
type SimulationResult struct {
	ExpectedValue float64   `json:"expected_value"`
	VaR95         float64   `json:"var95"`
	VaR99         float64   `json:"var99"`
	Paths         int       `json:"paths"`
	HorizonDays   int       `json:"horizon_days"`
	Sample        []float64 `json:"sample"` // first min(100, paths) terminal prices, trial order
}

// AllocationResult holds parallel asset/weight arrays from an allocator.
// Weights are fractions summing to 1. ExpectedReturn/ExpectedVolatility
// are only populated by the Sharpe allocator.
type AllocationResult struct {
	Assets  []string  `json:"assets"`
	Weights []float64 `json:"weights"`

	ExpectedReturn     float64 `json:"expected_return,omitempty"`
	ExpectedVolatility float64 `json:"expected_volatility,omitempty"`
}

// BacktestRecord is one day of the strategy's portfolio value trace.
type BacktestRecord struct {
	Date          string  `json:"date"`
	Value         float64 `json:"value"`
	ReturnPercent float64 `json:"return_percent"`
}

// RiskMetrics is the returns-based summary of a series.
//
// Unlike SimulationResult, VaR95/VaR99 here are daily *return* quantiles
// (loss-like). The two components genuinely use the same name for
// different units; each keeps its own meaning.
type RiskMetrics struct {
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	VaR95                float64 `json:"var95"`
	VaR99                float64 `json:"var99"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MaxDrawdown          float64 `json:"max_drawdown"`
}
