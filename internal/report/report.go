package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"stock-insight/internal/model"
	"stock-insight/internal/session"
)

// Bundle is the exported report document: one session's results plus a
// timestamp. Consumed by a file-save mechanism; no schema versioning.
type Bundle struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`

	Analysis  Analysis   `json:"analysis"`
	Portfolio *Portfolio `json:"portfolio,omitempty"`
}

// Analysis groups the per-series results.
type Analysis struct {
	Points     int                     `json:"points"`
	LastClose  float64                 `json:"last_close"`
	Quote      *model.OptionQuote      `json:"quote,omitempty"`
	Simulation *model.SimulationResult `json:"simulation,omitempty"`
	Backtest   []model.BacktestRecord  `json:"backtest,omitempty"`
	Metrics    *model.RiskMetrics      `json:"metrics,omitempty"`
}

// Portfolio groups the allocator outputs.
type Portfolio struct {
	Sharpe  *model.AllocationResult `json:"sharpe,omitempty"`
	Blended *model.AllocationResult `json:"blended,omitempty"`
}

// Build assembles a report bundle from a session.
func Build(s session.State) Bundle {
	b := Bundle{
		ID:          uuid.NewString(),
		Symbol:      s.Symbol,
		Source:      string(s.Source),
		GeneratedAt: time.Now(),
		Analysis: Analysis{
			Points:     len(s.Series),
			LastClose:  s.LastClose(),
			Quote:      s.Quote,
			Simulation: s.Simulation,
			Backtest:   s.Backtest,
			Metrics:    s.Metrics,
		},
	}
	if s.Sharpe != nil || s.Blended != nil {
		b.Portfolio = &Portfolio{Sharpe: s.Sharpe, Blended: s.Blended}
	}
	return b
}

// Save writes a bundle as indented JSON.
func Save(b Bundle, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
