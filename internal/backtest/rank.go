package backtest

import (
	"hash/fnv"
	"math/rand"
	"sort"

	"stock-insight/internal/data"
	"stock-insight/internal/model"
	"stock-insight/internal/series"
)

// RankedSymbol is a catalog symbol with its metrics, for the ranking view.
type RankedSymbol struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`

	LastClose     float64 `json:"last_close"`
	ReturnPercent float64 `json:"return_percent"` // close-to-close over the window

	Metrics model.RiskMetrics `json:"metrics"`
}

// RankBySharpe generates a deterministic series per catalog symbol,
// computes its risk metrics and sorts descending by Sharpe ratio. Each
// symbol seeds its own generator from the ticker so rankings are stable
// across calls for a given day count.
func RankBySharpe(days int) ([]RankedSymbol, error) {
	out := make([]RankedSymbol, 0, len(data.List()))

	for _, sym := range data.List() {
		rng := rand.New(rand.NewSource(symbolSeed(sym.Ticker)))
		pts, err := series.Generate(rng, sym.Ticker, days)
		if err != nil {
			return nil, err
		}

		metrics, err := ComputeMetrics(pts)
		if err != nil {
			return nil, err
		}

		first := pts[0].Close
		last := pts[len(pts)-1].Close
		out = append(out, RankedSymbol{
			Symbol:        sym.Ticker,
			Name:          sym.Name,
			LastClose:     last,
			ReturnPercent: (last - first) / first * 100,
			Metrics:       metrics,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Metrics.SharpeRatio > out[j].Metrics.SharpeRatio
	})
	return out, nil
}

func symbolSeed(ticker string) int64 {
	h := fnv.New64a()
	h.Write([]byte(ticker))
	return int64(h.Sum64())
}
