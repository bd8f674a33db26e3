package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"stock-insight/internal/backtest"
	"stock-insight/internal/config"
	"stock-insight/internal/model"
	"stock-insight/internal/montecarlo"
	"stock-insight/internal/portfolio"
	"stock-insight/internal/pricing"
	"stock-insight/internal/series"
)

var (
	cfgFile string
	seed    int64
	format  string

	days   int
	paths  int
	spot   float64
	strike float64
	expiry float64
	rate   float64
	vol    float64
	outCSV string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stock-insight",
		Short: "Stock analytics toolkit: indicators, option pricing, Monte Carlo, backtests",
		Long: `stock-insight runs the dashboard's analytics from the command line:

Examples:
  stock-insight analyze AAPL --days 90
  stock-insight price --spot 100 --strike 100 --expiry 30
  stock-insight simulate --start 150 --paths 10000
  stock-insight backtest MSFT --out results/ledger.csv
  stock-insight rank --days 180`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (optional)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = derive from time)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "table", "output format: table, json")

	rootCmd.AddCommand(analyzeCmd(), priceCmd(), simulateCmd(), portfolioCmd(), backtestCmd(), rankCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

func newRNG() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [symbol]",
		Short: "Generate and annotate a synthetic series",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			symbol := cfg.Market.Symbol
			if len(args) > 0 {
				symbol = args[0]
			}
			if days == 0 {
				days = cfg.Market.Days
			}

			pts, err := series.Generate(newRNG(), symbol, days)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(pts)
			}

			table := tablewriter.NewTable(os.Stdout,
				tablewriter.WithHeader([]string{"Date", "Close", "MA20", "MA50", "RSI", "MACD"}),
			)
			for _, p := range pts {
				table.Append([]string{
					p.Date,
					fmt.Sprintf("%.2f", p.Close),
					fmtOpt(p.MA20),
					fmtOpt(p.MA50),
					fmtOpt(p.RSI),
					fmtOpt(p.MACD),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "number of trading days (default from config)")
	return cmd
}

func priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a call/put pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if rate == 0 {
				rate = cfg.Pricing.RatePercent
			}
			if vol == 0 {
				vol = cfg.Pricing.VolPercent
			}

			quote, err := pricing.Price(spot, strike, expiry, rate, vol)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(quote)
			}
			fmt.Printf("Call: $%.2f  Put: $%.2f  (S=%.2f K=%.2f T=%.0fd r=%.1f%% vol=%.1f%%)\n",
				quote.Call, quote.Put, spot, strike, expiry, rate, vol)
			return nil
		},
	}
	cmd.Flags().Float64Var(&spot, "spot", 100, "spot price")
	cmd.Flags().Float64Var(&strike, "strike", 100, "strike price")
	cmd.Flags().Float64Var(&expiry, "expiry", 30, "days to expiry")
	cmd.Flags().Float64Var(&rate, "rate", 0, "risk-free rate percent (default from config)")
	cmd.Flags().Float64Var(&vol, "vol", 0, "volatility percent (default from config)")
	return cmd
}

func simulateCmd() *cobra.Command {
	var start float64
	var horizon int
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a Monte Carlo terminal-price simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if paths == 0 {
				paths = cfg.Simulation.Paths
			}
			if horizon == 0 {
				horizon = cfg.Simulation.HorizonDays
			}

			bar := progressbar.NewOptions(paths,
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Simulating"),
			)

			res, err := montecarlo.Simulate(newRNG(), start, paths, horizon, func(done, total int) {
				bar.Set(done)
			})
			if err != nil {
				return err
			}
			bar.Finish()
			fmt.Println()

			if format == "json" {
				return printJSON(res)
			}
			fmt.Printf("Expected value: $%.2f\n", res.ExpectedValue)
			fmt.Printf("VaR 95 (price level): $%.2f\n", res.VaR95)
			fmt.Printf("VaR 99 (price level): $%.2f\n", res.VaR99)
			fmt.Printf("Paths=%d Horizon=%dd Sample=%d\n", res.Paths, res.HorizonDays, len(res.Sample))
			return nil
		},
	}
	cmd.Flags().Float64Var(&start, "start", 100, "starting price")
	cmd.Flags().IntVar(&paths, "paths", 0, "number of paths (default from config)")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "horizon days (default from config)")
	return cmd
}

func portfolioCmd() *cobra.Command {
	var viewPairs []string
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Run the Sharpe and view-blending allocators",
		RunE: func(cmd *cobra.Command, args []string) error {
			sharpe, err := portfolio.OptimizeSharpe(portfolio.DefaultUniverse())
			if err != nil {
				return err
			}

			views := map[string]float64{}
			for _, pair := range viewPairs {
				if n, v, ok := splitView(pair); ok {
					views[n] = v
				}
			}
			blended, err := portfolio.BlendViews(portfolio.DefaultMarket(), views)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(map[string]model.AllocationResult{"sharpe": sharpe, "blended": blended})
			}

			fmt.Printf("Sharpe allocation (exp return %.1f%%, exp vol %.1f%%):\n",
				sharpe.ExpectedReturn*100, sharpe.ExpectedVolatility*100)
			renderAllocation(sharpe)
			fmt.Println("\nBlended allocation:")
			renderAllocation(blended)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&viewPairs, "view", nil, "subjective view as Name=return, e.g. --view Bonds=0.06")
	return cmd
}

func backtestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backtest [symbol]",
		Short: "Run the MA crossover backtest with risk metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			symbol := cfg.Market.Symbol
			if len(args) > 0 {
				symbol = args[0]
			}
			if days == 0 {
				days = cfg.Market.Days
			}

			pts, err := series.Generate(newRNG(), symbol, days)
			if err != nil {
				return err
			}

			res, err := backtest.New().Run(pts, &backtest.CrossoverStrategy{}, cfg.Backtest.InitialCapital)
			if err != nil {
				return err
			}
			metrics, err := backtest.ComputeMetrics(pts)
			if err != nil {
				return err
			}

			if outCSV != "" {
				if err := backtest.WriteLedgerCSV(outCSV, res.Ledger); err != nil {
					return err
				}
				fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), outCSV)
			}

			if format == "json" {
				return printJSON(map[string]interface{}{"result": res, "metrics": metrics})
			}

			fmt.Printf("%s over %d days (%s)\n", res.Strategy, days, symbol)
			fmt.Printf("Final value: $%.2f (%+.2f%%)\n", res.FinalValue, res.ReturnPercent)
			fmt.Printf("Annualized vol: %.1f%%  Sharpe: %.2f  Max drawdown: %.1f%%\n",
				metrics.AnnualizedVolatility*100, metrics.SharpeRatio, metrics.MaxDrawdown*100)
			fmt.Printf("VaR95: %.2f%%  VaR99: %.2f%% (daily returns)\n",
				metrics.VaR95*100, metrics.VaR99*100)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "number of trading days (default from config)")
	cmd.Flags().StringVar(&outCSV, "out", "", "optional path to write ledger CSV")
	return cmd
}

func rankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank catalog symbols by Sharpe ratio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if days == 0 {
				days = cfg.Market.Days
			}

			ranked, err := backtest.RankBySharpe(days)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(ranked)
			}

			table := tablewriter.NewTable(os.Stdout,
				tablewriter.WithHeader([]string{"Rank", "Symbol", "Name", "Close", "Return", "Sharpe", "Vol", "MaxDD"}),
			)
			for i, r := range ranked {
				table.Append([]string{
					fmt.Sprintf("%d", i+1),
					r.Symbol,
					r.Name,
					fmt.Sprintf("%.2f", r.LastClose),
					fmt.Sprintf("%+.1f%%", r.ReturnPercent),
					fmt.Sprintf("%.2f", r.Metrics.SharpeRatio),
					fmt.Sprintf("%.1f%%", r.Metrics.AnnualizedVolatility*100),
					fmt.Sprintf("%.1f%%", r.Metrics.MaxDrawdown*100),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "number of trading days (default from config)")
	return cmd
}

func renderAllocation(a model.AllocationResult) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Asset", "Weight"}),
	)
	for i, name := range a.Assets {
		table.Append([]string{name, fmt.Sprintf("%.1f%%", a.Weights[i]*100)})
	}
	table.Render()
}

func splitView(pair string) (string, float64, bool) {
	for i := 0; i < len(pair); i++ {
		if pair[i] == '=' {
			var v float64
			if _, err := fmt.Sscanf(pair[i+1:], "%f", &v); err == nil {
				return pair[:i], v, true
			}
			return "", 0, false
		}
	}
	return "", 0, false
}

func fmtOpt(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
