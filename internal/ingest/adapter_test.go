package ingest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestToSeriesFullColumns(t *testing.T) {
	input := "Date,Open,High,Low,Close,Volume\n"
	for i := 0; i < 60; i++ {
		input += "2024-01-01,99,103,98,101,1500000\n"
	}

	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	series, err := ToSeries(rand.New(rand.NewSource(1)), rows)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 60 {
		t.Fatalf("series length %d, want 60", len(series))
	}

	p := series[0]
	if p.Open != 99 || p.High != 103 || p.Low != 98 || p.Close != 101 || p.Volume != 1_500_000 {
		t.Errorf("point = %+v", p)
	}
	if p.Date != "2024-01-01" {
		t.Errorf("date %q", p.Date)
	}
}

func TestToSeriesPriceAlias(t *testing.T) {
	input := "Date,Price\n2024-01-01,42.5\n2024-01-02,43.0\n"

	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	series, err := ToSeries(rand.New(rand.NewSource(2)), rows)
	if err != nil {
		t.Fatal(err)
	}

	if series[0].Close != 42.5 || series[1].Close != 43.0 {
		t.Errorf("closes = %f, %f", series[0].Close, series[1].Close)
	}
	// Missing OHLC columns default to the resolved close.
	if series[0].Open != 42.5 || series[0].High != 42.5 || series[0].Low != 42.5 {
		t.Errorf("ohl defaults = %+v", series[0])
	}
	// Missing volume gets the generator-range filler.
	if series[0].Volume < 1_000_000 || series[0].Volume >= 11_000_000 {
		t.Errorf("volume %f outside filler range", series[0].Volume)
	}
}

func TestToSeriesFallbackClose(t *testing.T) {
	input := "Name\nWidget\n"

	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	series, err := ToSeries(rand.New(rand.NewSource(3)), rows)
	if err != nil {
		t.Fatal(err)
	}
	if series[0].Close != 100 {
		t.Errorf("close %f, want fallback 100", series[0].Close)
	}
	// Synthetic date from the parser carries through.
	if series[0].Date != "2020-01-01" {
		t.Errorf("date %q, want 2020-01-01", series[0].Date)
	}
}

func TestToSeriesAnnotates(t *testing.T) {
	var b strings.Builder
	b.WriteString("Close\n")
	price := 100.0
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 80; i++ {
		price *= 1 + (r.Float64()-0.5)*0.02
		b.WriteString(strconv.FormatFloat(price, 'f', 4, 64))
		b.WriteByte('\n')
	}
	input := b.String()

	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	series, err := ToSeries(rand.New(rand.NewSource(5)), rows)
	if err != nil {
		t.Fatal(err)
	}

	if series[60].MA20 == nil || series[60].MA50 == nil || series[60].RSI == nil {
		t.Error("indicators missing after lookback windows")
	}
}

func TestToSeriesEmptyDateCells(t *testing.T) {
	// Date header present but the cells are blank or missing entirely.
	input := "Date,Close\n,100\n2024-05-02,101\n2024-05-03\n"

	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	series, err := ToSeries(rand.New(rand.NewSource(6)), rows)
	if err != nil {
		t.Fatal(err)
	}

	if series[0].Date != "2020-01-01" {
		t.Errorf("blank date cell: %q, want synthetic 2020-01-01", series[0].Date)
	}
	if series[1].Date != "2024-05-02" {
		t.Errorf("real date cell replaced: %q", series[1].Date)
	}
	if series[2].Close != 100 {
		t.Errorf("row without close: %f, want fallback 100", series[2].Close)
	}
}

func TestToSeriesEmpty(t *testing.T) {
	if _, err := ToSeries(rand.New(rand.NewSource(1)), nil); err == nil {
		t.Error("expected error for empty rows")
	}
}
