package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\nmarket:\n  symbol: TSLA\n")

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.Server.Port != 9090 {
		t.Errorf("port %d, want 9090", c.Server.Port)
	}
	if c.Market.Symbol != "TSLA" {
		t.Errorf("symbol %q, want TSLA", c.Market.Symbol)
	}

	// Everything omitted falls back to the defaults.
	d := Default()
	if c.Market.Days != d.Market.Days {
		t.Errorf("days %d, want default %d", c.Market.Days, d.Market.Days)
	}
	if c.Simulation.Paths != d.Simulation.Paths {
		t.Errorf("paths %d, want default %d", c.Simulation.Paths, d.Simulation.Paths)
	}
	if c.Backtest.InitialCapital != d.Backtest.InitialCapital {
		t.Errorf("capital %f, want default %f", c.Backtest.InitialCapital, d.Backtest.InitialCapital)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"negative days", "market:\n  days: -5\n"},
		{"negative paths", "simulation:\n  paths: -1\n"},
		{"negative vol", "pricing:\n  vol_percent: -25\n"},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.body)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadUncheckedSkipsValidation(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 70000\n")

	c, err := LoadUnchecked(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Port != 70000 {
		t.Errorf("port %d, want raw 70000", c.Server.Port)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
