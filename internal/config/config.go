package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Market     MarketConfig     `yaml:"market"`
	Simulation SimulationConfig `yaml:"simulation"`
	Pricing    PricingConfig    `yaml:"pricing"`
	Backtest   BacktestConfig   `yaml:"backtest"`
}

type ServerConfig struct {
	Port              int `yaml:"port"`
	SimulatePerMinute int `yaml:"simulate_per_minute"`
	UploadPerMinute   int `yaml:"upload_per_minute"`
	SessionTTLMinutes int `yaml:"session_ttl_minutes"`
}

type MarketConfig struct {
	Symbol string `yaml:"symbol"`
	Days   int    `yaml:"days"`
}

type SimulationConfig struct {
	Paths       int `yaml:"paths"`
	HorizonDays int `yaml:"horizon_days"`
}

type PricingConfig struct {
	RatePercent float64 `yaml:"rate_percent"`
	VolPercent  float64 `yaml:"vol_percent"`
}

type BacktestConfig struct {
	InitialCapital float64 `yaml:"initial_capital"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			SimulatePerMinute: 30,
			UploadPerMinute:   20,
			SessionTTLMinutes: 30,
		},
		Market:     MarketConfig{Symbol: "AAPL", Days: 180},
		Simulation: SimulationConfig{Paths: 10_000, HorizonDays: 252},
		Pricing:    PricingConfig{RatePercent: 5, VolPercent: 25},
		Backtest:   BacktestConfig{InitialCapital: 10_000},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config but does not default or validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// applyDefaults fills zero-valued fields from Default so configs can stay
// concise.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.SimulatePerMinute == 0 {
		c.Server.SimulatePerMinute = d.Server.SimulatePerMinute
	}
	if c.Server.UploadPerMinute == 0 {
		c.Server.UploadPerMinute = d.Server.UploadPerMinute
	}
	if c.Server.SessionTTLMinutes == 0 {
		c.Server.SessionTTLMinutes = d.Server.SessionTTLMinutes
	}
	if c.Market.Symbol == "" {
		c.Market.Symbol = d.Market.Symbol
	}
	if c.Market.Days == 0 {
		c.Market.Days = d.Market.Days
	}
	if c.Simulation.Paths == 0 {
		c.Simulation.Paths = d.Simulation.Paths
	}
	if c.Simulation.HorizonDays == 0 {
		c.Simulation.HorizonDays = d.Simulation.HorizonDays
	}
	if c.Pricing.RatePercent == 0 {
		c.Pricing.RatePercent = d.Pricing.RatePercent
	}
	if c.Pricing.VolPercent == 0 {
		c.Pricing.VolPercent = d.Pricing.VolPercent
	}
	if c.Backtest.InitialCapital == 0 {
		c.Backtest.InitialCapital = d.Backtest.InitialCapital
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Market.Days <= 0 {
		return errors.New("market.days must be > 0")
	}
	if c.Simulation.Paths <= 0 {
		return errors.New("simulation.paths must be > 0")
	}
	if c.Simulation.HorizonDays <= 0 {
		return errors.New("simulation.horizon_days must be > 0")
	}
	if c.Pricing.VolPercent <= 0 {
		return errors.New("pricing.vol_percent must be > 0")
	}
	if c.Backtest.InitialCapital <= 0 {
		return errors.New("backtest.initial_capital must be > 0")
	}
	return nil
}
