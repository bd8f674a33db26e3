package report

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"stock-insight/internal/model"
	"stock-insight/internal/session"
)

func TestBuild(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	st, err := session.ChangeSymbol(session.State{ID: "s1"}, rng, "AAPL", 90)
	if err != nil {
		t.Fatal(err)
	}
	st, err = session.PriceOption(st, 0, st.LastClose(), 30, 5, 25)
	if err != nil {
		t.Fatal(err)
	}

	b := Build(st)
	if b.ID == "" {
		t.Error("bundle has no ID")
	}
	if b.Symbol != "AAPL" || b.Source != "generated" {
		t.Errorf("symbol/source = %s/%s", b.Symbol, b.Source)
	}
	if b.Analysis.Points != 90 || b.Analysis.LastClose != st.LastClose() {
		t.Errorf("analysis = %+v", b.Analysis)
	}
	if b.Analysis.Quote == nil {
		t.Error("quote missing from the bundle")
	}
	// No allocator output means no portfolio section at all.
	if b.Portfolio != nil {
		t.Errorf("portfolio = %+v, want nil", b.Portfolio)
	}
}

func TestBuildIncludesPortfolio(t *testing.T) {
	st, err := session.Allocate(session.State{ID: "s1"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	b := Build(st)
	if b.Portfolio == nil || b.Portfolio.Sharpe == nil || b.Portfolio.Blended == nil {
		t.Fatalf("portfolio = %+v", b.Portfolio)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "out.json")

	b := Bundle{
		ID:     "r1",
		Symbol: "MSFT",
		Source: "generated",
		Analysis: Analysis{
			Points:    10,
			LastClose: 372.5,
			Metrics:   &model.RiskMetrics{SharpeRatio: 1.2},
		},
	}
	if err := Save(b, path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got Bundle
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "r1" || got.Analysis.LastClose != 372.5 {
		t.Errorf("round trip = %+v", got)
	}
	if got.Analysis.Metrics == nil || got.Analysis.Metrics.SharpeRatio != 1.2 {
		t.Errorf("metrics = %+v", got.Analysis.Metrics)
	}
}
