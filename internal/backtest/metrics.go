package backtest

import (
	"errors"
	"math"
	"sort"

	"stock-insight/internal/model"
)

const (
	tradingDaysPerYear = 252
	riskFreeRate       = 0.02
)

// ComputeMetrics summarizes day-over-day close returns of a series.
//
// Volatility uses the population variance annualized by sqrt(252).
// VaR95/VaR99 are the 5th/1st percentile of the sorted daily returns —
// in this component they really are loss-like return quantiles, unlike
// the price levels in SimulationResult.
func ComputeMetrics(series []model.PricePoint) (model.RiskMetrics, error) {
	if len(series) < 2 {
		return model.RiskMetrics{}, errors.New("need at least 2 points for returns")
	}

	returns := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Close
		if prev == 0 {
			return model.RiskMetrics{}, errors.New("zero close in series")
		}
		returns = append(returns, (series[i].Close-prev)/prev)
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))

	vol := math.Sqrt(variance * tradingDaysPerYear)
	if vol == 0 {
		return model.RiskMetrics{}, errors.New("series has zero volatility")
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	return model.RiskMetrics{
		AnnualizedVolatility: vol,
		VaR95:                quantileSorted(sorted, 0.05),
		VaR99:                quantileSorted(sorted, 0.01),
		SharpeRatio:          (mean*tradingDaysPerYear - riskFreeRate) / vol,
		MaxDrawdown:          maxDrawdown(series),
	}, nil
}

// quantileSorted indexes an ascending-sorted slice at floor(q*n).
func quantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// maxDrawdown is the largest peak-to-trough fractional decline of close,
// with the running peak tracked left to right.
func maxDrawdown(series []model.PricePoint) float64 {
	peak := series[0].Close
	maxDD := 0.0
	for _, p := range series {
		if p.Close > peak {
			peak = p.Close
		}
		if peak > 0 {
			dd := (peak - p.Close) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}
