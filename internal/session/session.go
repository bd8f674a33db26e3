package session

import (
	"math/rand"
	"time"

	"stock-insight/internal/backtest"
	"stock-insight/internal/ingest"
	"stock-insight/internal/model"
	"stock-insight/internal/montecarlo"
	"stock-insight/internal/portfolio"
	"stock-insight/internal/pricing"
	"stock-insight/internal/series"
)

// Source says where the active series came from.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceUpload    Source = "upload"
)

// State is one analysis session: the active series plus every result the
// dashboard has computed from it. Each command returns a new State with
// the relevant result replaced wholesale; nothing is mutated in place, so
// a reader always sees either the old result or the new one, never a mix.
type State struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Source Source `json:"source"`

	Series []model.PricePoint `json:"series,omitempty"`

	Quote      *model.OptionQuote      `json:"quote,omitempty"`
	Simulation *model.SimulationResult `json:"simulation,omitempty"`
	Sharpe     *model.AllocationResult `json:"sharpe,omitempty"`
	Blended    *model.AllocationResult `json:"blended,omitempty"`
	Backtest   []model.BacktestRecord  `json:"backtest,omitempty"`
	Metrics    *model.RiskMetrics      `json:"metrics,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// LastClose returns the most recent close of the active series, or 0 when
// no series is loaded.
func (s State) LastClose() float64 {
	if len(s.Series) == 0 {
		return 0
	}
	return s.Series[len(s.Series)-1].Close
}

func (s State) touched() State {
	s.UpdatedAt = time.Now()
	return s
}

// clearDerived drops every result computed from the previous series,
// including the option quote whose default spot came from its last close.
func (s *State) clearDerived() {
	s.Quote = nil
	s.Simulation = nil
	s.Backtest = nil
	s.Metrics = nil
}

// ChangeSymbol regenerates the series for a symbol and clears results
// derived from the previous series.
func ChangeSymbol(s State, rng *rand.Rand, symbol string, days int) (State, error) {
	pts, err := series.Generate(rng, symbol, days)
	if err != nil {
		return s, err
	}
	s.Symbol = symbol
	s.Source = SourceGenerated
	s.Series = pts
	s.clearDerived()
	return s.touched(), nil
}

// LoadRows replaces the series with adapted upload rows.
func LoadRows(s State, rng *rand.Rand, rows []ingest.Row) (State, error) {
	pts, err := ingest.ToSeries(rng, rows)
	if err != nil {
		return s, err
	}
	s.Symbol = "CUSTOM"
	s.Source = SourceUpload
	s.Series = pts
	s.clearDerived()
	return s.touched(), nil
}

// PriceOption attaches an option quote. Spot defaults to the series'
// latest close when zero.
func PriceOption(s State, spot, strike, days, ratePct, volPct float64) (State, error) {
	if spot == 0 {
		spot = s.LastClose()
	}
	q, err := pricing.Price(spot, strike, days, ratePct, volPct)
	if err != nil {
		return s, err
	}
	s.Quote = &q
	return s.touched(), nil
}

// RunSimulation runs a Monte Carlo simulation forward from the latest
// close (or startPrice when the session has no series).
func RunSimulation(s State, rng *rand.Rand, startPrice float64, paths, horizonDays int) (State, error) {
	if startPrice == 0 {
		startPrice = s.LastClose()
	}
	res, err := montecarlo.Simulate(rng, startPrice, paths, horizonDays, nil)
	if err != nil {
		return s, err
	}
	s.Simulation = &res
	return s.touched(), nil
}

// Allocate computes both allocators over the built-in universe, blending
// any provided views.
func Allocate(s State, views map[string]float64) (State, error) {
	sharpe, err := portfolio.OptimizeSharpe(portfolio.DefaultUniverse())
	if err != nil {
		return s, err
	}
	blended, err := portfolio.BlendViews(portfolio.DefaultMarket(), views)
	if err != nil {
		return s, err
	}
	s.Sharpe = &sharpe
	s.Blended = &blended
	return s.touched(), nil
}

// RunBacktest runs the crossover backtest and risk metrics over the
// active series.
func RunBacktest(s State, initialCapital float64) (State, error) {
	res, err := backtest.New().Run(s.Series, &backtest.CrossoverStrategy{}, initialCapital)
	if err != nil {
		return s, err
	}
	metrics, err := backtest.ComputeMetrics(s.Series)
	if err != nil {
		return s, err
	}
	s.Backtest = res.Trace()
	s.Metrics = &metrics
	return s.touched(), nil
}
