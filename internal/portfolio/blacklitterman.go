package portfolio

import (
	"errors"

	"stock-insight/internal/model"
)

// PriorAsset is one entry of the view-blending allocator's market prior:
// a market-cap weight and a prior expected return (annual fraction).
type PriorAsset struct {
	Name         string  `json:"name"`
	MarketWeight float64 `json:"market_weight"`
	PriorReturn  float64 `json:"prior_return"`
}

// DefaultMarket is the hard-coded market prior used by the dashboard's
// Black-Litterman-style tab.
func DefaultMarket() []PriorAsset {
	return []PriorAsset{
		{Name: "US Equities", MarketWeight: 0.45, PriorReturn: 0.10},
		{Name: "Intl Equities", MarketWeight: 0.25, PriorReturn: 0.08},
		{Name: "Bonds", MarketWeight: 0.20, PriorReturn: 0.04},
		{Name: "Real Estate", MarketWeight: 0.10, PriorReturn: 0.07},
	}
}

// BlendViews mixes subjective return views into the market prior and
// re-normalizes. An asset with a view gets the arithmetic mean of prior
// and view; assets without a view keep the prior. Final weights are each
// blended return over the sum of blended returns — proportional, not
// covariance-aware.
func BlendViews(market []PriorAsset, views map[string]float64) (model.AllocationResult, error) {
	if len(market) == 0 {
		return model.AllocationResult{}, errors.New("market prior is empty")
	}

	blended := make([]float64, len(market))
	total := 0.0
	for i, a := range market {
		ret := a.PriorReturn
		if view, ok := views[a.Name]; ok {
			ret = (a.PriorReturn + view) / 2
		}
		blended[i] = ret
		total += ret
	}
	if total == 0 {
		return model.AllocationResult{}, errors.New("blended returns sum to zero")
	}

	res := model.AllocationResult{
		Assets:  make([]string, len(market)),
		Weights: make([]float64, len(market)),
	}
	for i, a := range market {
		res.Assets[i] = a.Name
		res.Weights[i] = blended[i] / total
	}

	return res, nil
}
