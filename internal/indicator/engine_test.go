package indicator

import (
	"math"
	"math/rand"
	"testing"

	"stock-insight/internal/model"
)

// fixture builds a bare series with the given closes.
func fixture(closes []float64) []model.PricePoint {
	pts := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		pts[i] = model.PricePoint{Close: c, Open: c, High: c, Low: c, Volume: 1}
	}
	return pts
}

func rampSeries(n int) []model.PricePoint {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return fixture(closes)
}

func TestAnnotateWindowBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	out := Annotate(rng, rampSeries(60))

	cases := []struct {
		name     string
		minIndex int
		get      func(p model.PricePoint) *float64
	}{
		{"ma20", 19, func(p model.PricePoint) *float64 { return p.MA20 }},
		{"ma50", 49, func(p model.PricePoint) *float64 { return p.MA50 }},
		{"rsi", 14, func(p model.PricePoint) *float64 { return p.RSI }},
		{"macd", 26, func(p model.PricePoint) *float64 { return p.MACD }},
		{"macdSignal", 34, func(p model.PricePoint) *float64 { return p.MACDSignal }},
		{"upperBB", 19, func(p model.PricePoint) *float64 { return p.UpperBB }},
		{"lowerBB", 19, func(p model.PricePoint) *float64 { return p.LowerBB }},
	}

	for _, tc := range cases {
		if got := tc.get(out[tc.minIndex-1]); got != nil {
			t.Errorf("%s defined at index %d, want nil", tc.name, tc.minIndex-1)
		}
		if got := tc.get(out[tc.minIndex]); got == nil {
			t.Errorf("%s nil at index %d, want defined", tc.name, tc.minIndex)
		}
	}
}

func TestAnnotateMA20Value(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	series := rampSeries(60)
	out := Annotate(rng, series)

	sum := 0.0
	for i := 0; i <= 19; i++ {
		sum += series[i].Close
	}
	want := sum / 20

	if out[19].MA20 == nil {
		t.Fatal("ma20 nil at index 19")
	}
	if math.Abs(*out[19].MA20-want) > 1e-9 {
		t.Errorf("ma20[19] = %f, want %f", *out[19].MA20, want)
	}
	if out[18].MA20 != nil {
		t.Error("ma20 defined at index 18")
	}
}

func TestAnnotateRSIBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	closes := make([]float64, 80)
	price := 100.0
	r := rand.New(rand.NewSource(5))
	for i := range closes {
		price *= 1 + (r.Float64()-0.5)*0.04
		closes[i] = price
	}
	out := Annotate(rng, fixture(closes))

	for i, p := range out {
		if p.RSI == nil {
			continue
		}
		if *p.RSI < 0 || *p.RSI > 100 {
			t.Fatalf("rsi[%d] = %f out of [0,100]", i, *p.RSI)
		}
	}
}

func TestAnnotateRSIAllGains(t *testing.T) {
	// Monotonic rise: zero losses, guard treats avgLoss as 1, so RSI is
	// below 100 but well above 50.
	rng := rand.New(rand.NewSource(1))
	out := Annotate(rng, rampSeries(30))

	if out[20].RSI == nil {
		t.Fatal("rsi nil at index 20")
	}
	got := *out[20].RSI
	// avgGain = 1, avgLoss treated as 1 -> rs = 1 -> rsi = 50
	if math.Abs(got-50) > 1e-9 {
		t.Errorf("rsi = %f, want 50 for constant unit gains", got)
	}
}

func TestAnnotateBollingerOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	closes := make([]float64, 60)
	r := rand.New(rand.NewSource(11))
	price := 50.0
	for i := range closes {
		price *= 1 + (r.Float64()-0.5)*0.06
		closes[i] = price
	}
	out := Annotate(rng, fixture(closes))

	for i, p := range out {
		if p.UpperBB == nil {
			continue
		}
		if *p.UpperBB < *p.LowerBB {
			t.Fatalf("upperBB < lowerBB at %d", i)
		}
	}
}

func TestAnnotateBollingerFlatSeries(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 250
	}
	out := Annotate(rng, fixture(closes))

	// Zero variance: both bands collapse onto the SMA.
	if *out[25].UpperBB != 250 || *out[25].LowerBB != 250 {
		t.Errorf("flat series bands = [%f, %f], want [250, 250]",
			*out[25].LowerBB, *out[25].UpperBB)
	}
}

func TestAnnotateMACDMatchesPrefixEMA(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	series := rampSeries(40)
	out := Annotate(rng, series)

	// Recompute macd[30] independently from the prefix formula.
	closes := model.Closes(series)[:31]
	want := emaOver(closes, 12) - emaOver(closes, 26)

	if out[30].MACD == nil {
		t.Fatal("macd nil at index 30")
	}
	if math.Abs(*out[30].MACD-want) > 1e-9 {
		t.Errorf("macd[30] = %f, want %f", *out[30].MACD, want)
	}
}

func TestAnnotateSignalIsMeanOfTrailingMACD(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	out := Annotate(rng, rampSeries(50))

	sum := 0.0
	for k := 32; k <= 40; k++ {
		if out[k].MACD == nil {
			t.Fatalf("macd nil at %d", k)
		}
		sum += *out[k].MACD
	}
	want := sum / 9

	if out[40].MACDSignal == nil {
		t.Fatal("macdSignal nil at index 40")
	}
	if math.Abs(*out[40].MACDSignal-want) > 1e-9 {
		t.Errorf("macdSignal[40] = %f, want %f", *out[40].MACDSignal, want)
	}
}

func TestAnnotateOverlays(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	out := Annotate(rng, rampSeries(200))

	present := 0
	for i, p := range out {
		if p.Portfolio == nil || p.Benchmark == nil {
			t.Fatalf("portfolio/benchmark nil at %d", i)
		}
		if *p.Portfolio < p.Close || *p.Portfolio > p.Close*1.1 {
			t.Fatalf("portfolio[%d] = %f outside [close, close*1.1]", i, *p.Portfolio)
		}
		if *p.Benchmark < p.Close || *p.Benchmark > p.Close*1.05 {
			t.Fatalf("benchmark[%d] = %f outside [close, close*1.05]", i, *p.Benchmark)
		}
		if p.Prediction != nil {
			present++
			if *p.Prediction < p.Close*0.95 || *p.Prediction > p.Close*1.05 {
				t.Fatalf("prediction[%d] = %f outside ±5%% of close", i, *p.Prediction)
			}
		}
	}
	// Present with probability 0.5; 200 points should land well inside.
	if present < 60 || present > 140 {
		t.Errorf("prediction present on %d/200 points, want roughly half", present)
	}
}

func TestAnnotatePreservesInput(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	series := rampSeries(30)
	out := Annotate(rng, series)

	if len(out) != len(series) {
		t.Fatalf("length changed: %d -> %d", len(series), len(out))
	}
	for i := range series {
		if out[i].Close != series[i].Close || out[i].Date != series[i].Date {
			t.Fatalf("point %d OHLCV mutated", i)
		}
	}
	// The input slice itself must stay unannotated.
	if series[25].MA20 != nil {
		t.Error("input slice was annotated in place")
	}
}
