package main

import (
	"flag"
	"fmt"
	"math/rand"

	"stock-insight/internal/backtest"
	"stock-insight/internal/montecarlo"
	"stock-insight/internal/portfolio"
	"stock-insight/internal/pricing"
	"stock-insight/internal/series"
)

// Demo:
// - Generate an annotated series for one symbol
// - Price an at-the-money option off the latest close
// - Run a small Monte Carlo simulation
// - Run the crossover backtest and both allocators
// Shows how the engines fit together end to end.
func main() {
	symbol := flag.String("symbol", "AAPL", "Symbol to analyze")
	days := flag.Int("days", 120, "Number of trading days to generate")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	pts, err := series.Generate(rng, *symbol, *days)
	if err != nil {
		panic(err)
	}
	last := pts[len(pts)-1]
	fmt.Printf("%s: %d points, last close $%.2f\n", *symbol, len(pts), last.Close)
	if last.MA20 != nil && last.RSI != nil {
		fmt.Printf("MA20=%.2f RSI=%.1f\n", *last.MA20, *last.RSI)
	}

	quote, err := pricing.Price(last.Close, last.Close, 30, 5, 25)
	if err != nil {
		panic(err)
	}
	fmt.Printf("ATM 30d option: call $%.2f put $%.2f\n", quote.Call, quote.Put)

	sim, err := montecarlo.Simulate(rng, last.Close, 2000, 252, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Monte Carlo: E[$]=%.2f VaR95=$%.2f VaR99=$%.2f\n",
		sim.ExpectedValue, sim.VaR95, sim.VaR99)

	res, err := backtest.New().Run(pts, &backtest.CrossoverStrategy{}, backtest.DefaultInitialCapital)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Backtest: final $%.2f (%+.2f%%) over %d days\n",
		res.FinalValue, res.ReturnPercent, len(res.Ledger))

	sharpe, err := portfolio.OptimizeSharpe(portfolio.DefaultUniverse())
	if err != nil {
		panic(err)
	}
	fmt.Printf("Sharpe allocation: exp return %.1f%%, exp vol %.1f%%\n",
		sharpe.ExpectedReturn*100, sharpe.ExpectedVolatility*100)

	blended, err := portfolio.BlendViews(portfolio.DefaultMarket(), map[string]float64{"Bonds": 0.06})
	if err != nil {
		panic(err)
	}
	for i, name := range blended.Assets {
		fmt.Printf("  %-14s %5.1f%%\n", name, blended.Weights[i]*100)
	}
}
