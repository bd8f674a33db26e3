package ingest

import (
	"errors"
	"math/rand"
	"strings"

	"stock-insight/internal/indicator"
	"stock-insight/internal/model"
)

const fallbackClose = 100.0

// ToSeries adapts ingested rows into an annotated price series. Field
// names resolve case-insensitively with aliases (close|price), open/high/
// low default to the resolved close, volume defaults to a random filler
// in the generator's range, and an unresolvable close falls back to 100.
func ToSeries(rng *rand.Rand, rows []Row) ([]model.PricePoint, error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows to adapt")
	}

	out := make([]model.PricePoint, 0, len(rows))
	for i, row := range rows {
		closePx, ok := number(row, "close", "price")
		if !ok {
			closePx = fallbackClose
		}

		open, ok := number(row, "open")
		if !ok {
			open = closePx
		}
		high, ok := number(row, "high")
		if !ok {
			high = closePx
		}
		low, ok := number(row, "low")
		if !ok {
			low = closePx
		}
		volume, ok := number(row, "volume")
		if !ok {
			volume = float64(1_000_000 + rng.Intn(10_000_000))
		}

		// A date header with an empty or missing cell falls back to the
		// same synthetic sequence the headerless path uses.
		date := text(row, "date")
		if date == "" {
			date = syntheticEpoch.AddDate(0, 0, i).Format("2006-01-02")
		}

		out = append(out, model.PricePoint{
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: volume,
		})
	}

	return indicator.Annotate(rng, out), nil
}

// number resolves the first field whose key matches any name
// case-insensitively and holds a numeric value.
func number(row Row, names ...string) (float64, bool) {
	for _, name := range names {
		for key, f := range row {
			if strings.EqualFold(key, name) && f.Numeric {
				return f.Number, true
			}
		}
	}
	return 0, false
}

func text(row Row, name string) string {
	for key, f := range row {
		if strings.Contains(strings.ToLower(key), name) && !f.Numeric {
			return f.Text
		}
	}
	return ""
}
