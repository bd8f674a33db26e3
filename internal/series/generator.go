package series

import (
	"errors"
	"math/rand"
	"time"

	"stock-insight/internal/data"
	"stock-insight/internal/indicator"
	"stock-insight/internal/model"
)

const (
	// Daily drift and symmetric noise amplitude of the geometric walk.
	drift      = 0.0002
	volatility = 0.02

	// Volume is uniform in [minVolume, minVolume+volumeSpread).
	minVolume    = 1_000_000
	volumeSpread = 10_000_000
)

// Generate produces a synthetic daily OHLCV series of length days for the
// given symbol, already annotated with indicators. The walk starts at the
// symbol's catalog base price (unknown symbols start at 100) and steps by
// price*(1 + drift + U(-vol, vol)) per day.
//
// High/low are derived around the walk price; open and close are drawn
// independently inside [low, high], so their ordering relative to each
// other is not fixed.
func Generate(rng *rand.Rand, symbol string, days int) ([]model.PricePoint, error) {
	if days <= 0 {
		return nil, errors.New("days must be > 0")
	}

	price := data.BasePrice(symbol)
	start := time.Now().AddDate(0, 0, -days)

	out := make([]model.PricePoint, 0, days)
	for i := 0; i < days; i++ {
		noise := (rng.Float64()*2 - 1) * volatility
		price = price * (1 + drift + noise)

		high := price * (1 + rng.Float64()*0.02)
		low := price * (1 - rng.Float64()*0.02)
		open := low + rng.Float64()*(high-low)
		closePx := low + rng.Float64()*(high-low)
		volume := float64(minVolume + rng.Intn(volumeSpread))

		out = append(out, model.PricePoint{
			Date:   start.AddDate(0, 0, i).Format("2006-01-02"),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: volume,
		})
	}

	return indicator.Annotate(rng, out), nil
}
