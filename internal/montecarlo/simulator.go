package montecarlo

import (
	"errors"
	"math/rand"
	"sort"

	"stock-insight/internal/model"
)

const (
	// DefaultPaths and DefaultHorizonDays match the dashboard's one-click
	// simulation: 10,000 one-year daily paths.
	DefaultPaths       = 10_000
	DefaultHorizonDays = 252

	dailyDrift = 0.0008
	dailyShock = 0.02

	sampleSize = 100
)

// ProgressFunc is called after each completed path with (done, total).
type ProgressFunc func(done, total int)

// Simulate runs paths independent daily random walks forward from
// startPrice and summarizes the terminal prices.
//
// VaR95/VaR99 are the sorted terminal prices at index floor(0.05*paths)
// and floor(0.01*paths): low-percentile price levels, not losses. The run
// is synchronous and always completes.
func Simulate(rng *rand.Rand, startPrice float64, paths, horizonDays int, progress ProgressFunc) (model.SimulationResult, error) {
	if startPrice <= 0 {
		return model.SimulationResult{}, errors.New("start price must be > 0")
	}
	if paths <= 0 {
		return model.SimulationResult{}, errors.New("paths must be > 0")
	}
	if horizonDays <= 0 {
		return model.SimulationResult{}, errors.New("horizon days must be > 0")
	}

	terminal := make([]float64, paths)
	for p := 0; p < paths; p++ {
		price := startPrice
		for d := 0; d < horizonDays; d++ {
			price = price * (1 + dailyDrift + (rng.Float64()*2-1)*dailyShock)
		}
		terminal[p] = price
		if progress != nil {
			progress(p+1, paths)
		}
	}

	sum := 0.0
	for _, v := range terminal {
		sum += v
	}

	n := sampleSize
	if paths < n {
		n = paths
	}
	sample := make([]float64, n)
	copy(sample, terminal[:n])

	sorted := make([]float64, paths)
	copy(sorted, terminal)
	sort.Float64s(sorted)

	return model.SimulationResult{
		ExpectedValue: sum / float64(paths),
		VaR95:         sorted[int(0.05*float64(paths))],
		VaR99:         sorted[int(0.01*float64(paths))],
		Paths:         paths,
		HorizonDays:   horizonDays,
		Sample:        sample,
	}, nil
}
