package portfolio

import (
	"errors"
	"math"

	"stock-insight/internal/model"
)

// Asset is one entry of the Sharpe allocator's input universe.
// ExpectedReturn and Volatility are annual fractions (0.12 = 12%).
type Asset struct {
	Name           string  `json:"name"`
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
}

// DefaultUniverse is the hard-coded illustrative universe the dashboard
// allocates over. It is not derived from any price series.
func DefaultUniverse() []Asset {
	return []Asset{
		{Name: "US Equities", ExpectedReturn: 0.12, Volatility: 0.18},
		{Name: "Intl Equities", ExpectedReturn: 0.09, Volatility: 0.16},
		{Name: "Bonds", ExpectedReturn: 0.04, Volatility: 0.05},
		{Name: "Real Estate", ExpectedReturn: 0.08, Volatility: 0.14},
		{Name: "Commodities", ExpectedReturn: 0.06, Volatility: 0.20},
	}
}

// OptimizeSharpe weights each asset proportionally to its return/volatility
// ratio. The aggregate volatility treats assets as uncorrelated; that
// simplification is part of the contract, not an oversight.
func OptimizeSharpe(universe []Asset) (model.AllocationResult, error) {
	if len(universe) == 0 {
		return model.AllocationResult{}, errors.New("universe is empty")
	}

	ratios := make([]float64, len(universe))
	total := 0.0
	for i, a := range universe {
		if a.Volatility <= 0 {
			return model.AllocationResult{}, errors.New("asset volatility must be > 0")
		}
		ratios[i] = a.ExpectedReturn / a.Volatility
		total += ratios[i]
	}
	if total == 0 {
		return model.AllocationResult{}, errors.New("all return/volatility ratios are zero")
	}

	res := model.AllocationResult{
		Assets:  make([]string, len(universe)),
		Weights: make([]float64, len(universe)),
	}

	var expReturn, volSq float64
	for i, a := range universe {
		w := ratios[i] / total
		res.Assets[i] = a.Name
		res.Weights[i] = w
		expReturn += w * a.ExpectedReturn
		volSq += (w * a.Volatility) * (w * a.Volatility)
	}
	res.ExpectedReturn = expReturn
	res.ExpectedVolatility = math.Sqrt(volSq)

	return res, nil
}
