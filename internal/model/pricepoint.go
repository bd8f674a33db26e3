package model

// PricePoint is one trading day of OHLCV data plus the indicator fields
// attached by the indicator engine. Indicator fields are pointers because
// they are undefined before their minimum lookback window; a nil field is
// "not yet computable", never zero.
//
// Units:
// - prices in currency units (positive)
// - Volume in shares (non-negative)
// - RSI in [0,100]
type PricePoint struct {
	Date   string  `json:"date"` // calendar date, YYYY-MM-DD
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`

	MA20       *float64 `json:"ma20,omitempty"`
	MA50       *float64 `json:"ma50,omitempty"`
	RSI        *float64 `json:"rsi,omitempty"`
	MACD       *float64 `json:"macd,omitempty"`
	MACDSignal *float64 `json:"macdSignal,omitempty"`
	UpperBB    *float64 `json:"upperBB,omitempty"`
	LowerBB    *float64 `json:"lowerBB,omitempty"`

	// Display-only overlays. Portfolio and Benchmark are random multiples
	// of close; Prediction is present with probability 0.5.
	Portfolio  *float64 `json:"portfolio,omitempty"`
	Benchmark  *float64 `json:"benchmark,omitempty"`
	Prediction *float64 `json:"prediction,omitempty"`
}

// Closes extracts the close column from a series.
func Closes(series []PricePoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Close
	}
	return out
}

// Float returns a pointer to v. Convenience for optional indicator fields.
func Float(v float64) *float64 { return &v }
