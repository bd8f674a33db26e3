package pricing

import (
	"errors"
	"math"

	"stock-insight/internal/model"
)

// MinTick is the floor applied independently to both legs of a quote.
const MinTick = 0.01

// Price computes an approximate call/put quote.
//
// S and K are in currency units, days is calendar days to expiry, rate and
// vol are percentages (5 means 5%). The model is Black-Scholes with a
// closed-form normal CDF approximation plus an ad hoc in-the-money bump
// and out-of-the-money floor; the put is then derived from put-call
// parity against the adjusted call. It is a display-grade pricer, not a
// finance-grade one.
func Price(spot, strike, days, ratePct, volPct float64) (model.OptionQuote, error) {
	if spot <= 0 {
		return model.OptionQuote{}, errors.New("spot must be > 0")
	}
	if strike <= 0 {
		return model.OptionQuote{}, errors.New("strike must be > 0")
	}
	if days <= 0 {
		return model.OptionQuote{}, errors.New("days to expiry must be > 0")
	}

	t := days / 365.0
	r := ratePct / 100.0
	sigma := volPct / 100.0

	d1 := (math.Log(spot/strike) + (r+sigma*sigma/2)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)

	call := spot*normCDF(d1) - strike*math.Exp(-r*t)*normCDF(d2)

	if spot > strike {
		// In the money: bump the call with a moneyness-scaled premium.
		call += sigma * spot * 0.1 * (1 + math.Abs(spot-strike)/strike)
	} else {
		floor := math.Max(0.1, t) * sigma * spot * 0.05
		if call < floor {
			call = floor
		}
	}
	if call < MinTick {
		call = MinTick
	}

	put := call + strike*math.Exp(-r*t) - spot
	if put < MinTick {
		put = MinTick
	}

	return model.OptionQuote{Call: call, Put: put}, nil
}

// normCDF approximates the standard normal CDF with
// 0.5*(1 + sign(x)*sqrt(1 - exp(-2x²/π))).
// Quotes must match this closed form, not an exact integral.
func normCDF(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	return 0.5 * (1 + sign*math.Sqrt(1-math.Exp(-2*x*x/math.Pi)))
}
