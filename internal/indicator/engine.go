package indicator

import (
	"math"
	"math/rand"

	"stock-insight/internal/model"
)

const (
	maShortPeriod = 20
	maLongPeriod  = 50
	rsiPeriod     = 14
	emaFast       = 12
	emaSlow       = 26
	signalPeriod  = 9
	bbPeriod      = 20
	bbWidth       = 2.0
)

// Annotate enriches each point with moving averages, RSI, MACD, Bollinger
// Bands and the display-only portfolio/benchmark/prediction overlays.
// Order, dates and OHLCV values are unchanged; index i uses only closes at
// index <= i. Fields stay nil before their minimum lookback index.
func Annotate(rng *rand.Rand, series []model.PricePoint) []model.PricePoint {
	out := make([]model.PricePoint, len(series))
	copy(out, series)

	closes := model.Closes(series)
	macd := make([]*float64, len(series))

	for i := range out {
		p := &out[i]

		if i >= maShortPeriod-1 {
			p.MA20 = model.Float(smaAt(closes, i, maShortPeriod))
		}
		if i >= maLongPeriod-1 {
			p.MA50 = model.Float(smaAt(closes, i, maLongPeriod))
		}
		if i >= rsiPeriod {
			p.RSI = model.Float(rsiAt(closes, i, rsiPeriod))
		}
		if i >= emaSlow {
			// Each EMA is recomputed over the whole prefix, seeded with the
			// first close. Quadratic on purpose: the dashboard's numbers come
			// from exactly this formulation.
			m := emaOver(closes[:i+1], emaFast) - emaOver(closes[:i+1], emaSlow)
			macd[i] = model.Float(m)
			p.MACD = model.Float(m)
		}
		if i >= emaSlow+signalPeriod-1 {
			sum := 0.0
			for k := i - signalPeriod + 1; k <= i; k++ {
				sum += *macd[k]
			}
			p.MACDSignal = model.Float(sum / signalPeriod)
		}
		if i >= bbPeriod-1 {
			sma := smaAt(closes, i, bbPeriod)
			sd := stddevAt(closes, i, bbPeriod, sma)
			p.UpperBB = model.Float(sma + bbWidth*sd)
			p.LowerBB = model.Float(sma - bbWidth*sd)
		}

		p.Portfolio = model.Float(p.Close * (1 + rng.Float64()*0.1))
		p.Benchmark = model.Float(p.Close * (1 + rng.Float64()*0.05))
		if rng.Float64() > 0.5 {
			p.Prediction = model.Float(p.Close * (1 + (rng.Float64()-0.5)*0.1))
		}
	}

	return out
}

// smaAt is the simple moving average of the trailing window ending at i.
func smaAt(closes []float64, i, period int) float64 {
	sum := 0.0
	for k := i - period + 1; k <= i; k++ {
		sum += closes[k]
	}
	return sum / float64(period)
}

// rsiAt computes the classic RSI from the trailing one-day deltas ending at
// i. A zero average loss is treated as 1 to avoid dividing by zero.
func rsiAt(closes []float64, i, period int) float64 {
	var gains, losses float64
	for k := i - period + 1; k <= i; k++ {
		change := closes[k] - closes[k-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	if avgLoss == 0 {
		avgLoss = 1
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// emaOver computes the exponential moving average over all of closes,
// seeded with the first value.
func emaOver(closes []float64, period int) float64 {
	mult := 2.0 / float64(period+1)
	ema := closes[0]
	for _, c := range closes[1:] {
		ema = c*mult + ema*(1-mult)
	}
	return ema
}

// stddevAt is the population standard deviation (divisor = period) of the
// trailing window ending at i.
func stddevAt(closes []float64, i, period int, mean float64) float64 {
	var sumSquares float64
	for k := i - period + 1; k <= i; k++ {
		diff := closes[k] - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(period))
}
