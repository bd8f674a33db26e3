package backtest

import (
	"fmt"
	"math"

	"stock-insight/internal/model"
)

// StartIndex is the first decision day: both moving averages need their
// lookback, and the crossover compares against the prior day.
const StartIndex = 50

// DefaultInitialCapital is the dashboard's fixed starting stake.
const DefaultInitialCapital = 10_000.0

// LedgerRow is one day of backtest output. This is the primary artifact
// for "what happened" in a run.
type LedgerRow struct {
	Index int

	Date  string
	Close float64

	Action model.Action

	Shares  int
	Capital float64

	Value         float64
	ReturnPercent float64
}

type Result struct {
	Strategy string
	Ledger   []LedgerRow

	FinalValue    float64
	ReturnPercent float64
}

// Trace projects the ledger onto the per-day value records the dashboard
// charts.
func (r *Result) Trace() []model.BacktestRecord {
	out := make([]model.BacktestRecord, len(r.Ledger))
	for i, row := range r.Ledger {
		out[i] = model.BacktestRecord{
			Date:          row.Date,
			Value:         row.Value,
			ReturnPercent: row.ReturnPercent,
		}
	}
	return out
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes a strategy over an annotated series from StartIndex on.
// Whole shares only; a buy spends floor(capital/close) shares' worth, a
// sell liquidates fully. No shorting, no transaction costs.
func (e *Engine) Run(series []model.PricePoint, strat Strategy, initialCapital float64) (*Result, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if initialCapital <= 0 {
		return nil, fmt.Errorf("initial capital must be > 0")
	}
	if len(series) < StartIndex {
		return nil, fmt.Errorf("need at least %d points, got %d", StartIndex, len(series))
	}

	pos := Position{Capital: initialCapital}
	ledger := make([]LedgerRow, 0, len(series)-StartIndex)

	for i := StartIndex; i < len(series); i++ {
		pt := series[i]
		action := strat.Decide(Context{
			Index:    i,
			Prev:     series[i-1],
			Curr:     pt,
			Position: pos,
		})

		switch action {
		case model.ActionBuy:
			shares := int(math.Floor(pos.Capital / pt.Close))
			if shares > 0 {
				pos.Shares += shares
				pos.Capital -= float64(shares) * pt.Close
			} else {
				action = model.ActionHold
			}
		case model.ActionSell:
			if pos.Shares > 0 {
				pos.Capital += float64(pos.Shares) * pt.Close
				pos.Shares = 0
			} else {
				action = model.ActionHold
			}
		}

		value := pos.Capital + float64(pos.Shares)*pt.Close
		ledger = append(ledger, LedgerRow{
			Index:         i,
			Date:          pt.Date,
			Close:         pt.Close,
			Action:        action,
			Shares:        pos.Shares,
			Capital:       pos.Capital,
			Value:         value,
			ReturnPercent: (value - initialCapital) / initialCapital * 100,
		})
	}

	res := &Result{
		Strategy:   strat.Name(),
		Ledger:     ledger,
		FinalValue: initialCapital,
	}
	if len(ledger) > 0 {
		last := ledger[len(ledger)-1]
		res.FinalValue = last.Value
		res.ReturnPercent = last.ReturnPercent
	}
	return res, nil
}
