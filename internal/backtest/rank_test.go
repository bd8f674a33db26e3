package backtest

import (
	"testing"

	"stock-insight/internal/data"
)

func TestRankBySharpeCoversCatalog(t *testing.T) {
	ranked, err := RankBySharpe(180)
	if err != nil {
		t.Fatal(err)
	}

	if len(ranked) != len(data.List()) {
		t.Fatalf("ranked %d symbols, catalog has %d", len(ranked), len(data.List()))
	}

	seen := make(map[string]bool)
	for _, r := range ranked {
		if seen[r.Symbol] {
			t.Fatalf("symbol %s ranked twice", r.Symbol)
		}
		seen[r.Symbol] = true
		if r.LastClose <= 0 {
			t.Errorf("%s last close %f, want > 0", r.Symbol, r.LastClose)
		}
	}
}

func TestRankBySharpeSortedDescending(t *testing.T) {
	ranked, err := RankBySharpe(180)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Metrics.SharpeRatio > ranked[i-1].Metrics.SharpeRatio {
			t.Fatalf("not sorted at %d: %f > %f", i,
				ranked[i].Metrics.SharpeRatio, ranked[i-1].Metrics.SharpeRatio)
		}
	}
}

func TestRankBySharpeStable(t *testing.T) {
	a, err := RankBySharpe(120)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RankBySharpe(120)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i].Symbol != b[i].Symbol || a[i].Metrics.SharpeRatio != b[i].Metrics.SharpeRatio {
			t.Fatalf("ranking not stable at %d: %s vs %s", i, a[i].Symbol, b[i].Symbol)
		}
	}
}
