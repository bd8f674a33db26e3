package backtest

import "stock-insight/internal/model"

// Position is the strategy's holdings going into a decision.
type Position struct {
	Shares  int
	Capital float64
}

// Context is everything a strategy sees for one decision day.
// Prev and Curr are consecutive annotated points; Index is Curr's index
// in the full series.
type Context struct {
	Index    int
	Prev     model.PricePoint
	Curr     model.PricePoint
	Position Position
}

type Strategy interface {
	Name() string
	Decide(ctx Context) model.Action
}

// CrossoverStrategy trades MA(20)/MA(50) crosses: buy the golden cross,
// liquidate on the death cross. Long-only, whole capital per entry.
type CrossoverStrategy struct{}

func (s *CrossoverStrategy) Name() string { return "ma-crossover" }

func (s *CrossoverStrategy) Decide(ctx Context) model.Action {
	prev, curr := ctx.Prev, ctx.Curr
	if prev.MA20 == nil || prev.MA50 == nil || curr.MA20 == nil || curr.MA50 == nil {
		return model.ActionHold
	}

	goldenCross := *prev.MA20 <= *prev.MA50 && *curr.MA20 > *curr.MA50
	deathCross := *prev.MA20 >= *prev.MA50 && *curr.MA20 < *curr.MA50

	if goldenCross && ctx.Position.Shares == 0 {
		return model.ActionBuy
	}
	if deathCross && ctx.Position.Shares > 0 {
		return model.ActionSell
	}
	return model.ActionHold
}

// BuyAndHoldStrategy enters on the first decision day and never exits.
// Used as the comparison baseline for the crossover.
type BuyAndHoldStrategy struct{}

func (s *BuyAndHoldStrategy) Name() string { return "buy-and-hold" }

func (s *BuyAndHoldStrategy) Decide(ctx Context) model.Action {
	if ctx.Position.Shares == 0 && ctx.Position.Capital >= ctx.Curr.Close {
		return model.ActionBuy
	}
	return model.ActionHold
}
