package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"stock-insight/internal/series"
)

// Writes a sample OHLCV CSV suitable for the dashboard's upload path,
// using the synthetic generator. Handy for exercising the ingest pipeline
// without hunting for real exports.
func main() {
	symbol := flag.String("symbol", "AAPL", "Symbol to generate")
	days := flag.Int("days", 120, "Number of rows")
	seed := flag.Int64("seed", 0, "Random seed (0 = fixed default)")
	outputPath := flag.String("output", "data/sample.csv", "Output CSV path")
	flag.Parse()

	s := *seed
	if s == 0 {
		s = 1
	}
	rng := rand.New(rand.NewSource(s))

	pts, err := series.Generate(rng, *symbol, *days)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outputPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Open", "High", "Low", "Close", "Volume"}); err != nil {
		panic(err)
	}
	for _, p := range pts {
		row := []string{
			p.Date,
			strconv.FormatFloat(p.Open, 'f', 2, 64),
			strconv.FormatFloat(p.High, 'f', 2, 64),
			strconv.FormatFloat(p.Low, 'f', 2, 64),
			strconv.FormatFloat(p.Close, 'f', 2, 64),
			strconv.FormatFloat(p.Volume, 'f', 0, 64),
		}
		if err := w.Write(row); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Wrote %d rows to %s\n", len(pts), *outputPath)
}
