package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Symbol describes one entry in the tradable-symbol catalog.
type Symbol struct {
	Ticker    string  `json:"ticker"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"` // starting price for the synthetic generator
}

// SymbolList is the on-disk catalog shape.
type SymbolList struct {
	UpdatedAt string   `json:"updated_at"` // ISO 8601 timestamp
	Symbols   []Symbol `json:"symbols"`
}

// DefaultBasePrice is used for symbols not present in the catalog.
const DefaultBasePrice = 100.0

// defaultCatalog is the built-in illustrative universe. The generator is
// synthetic, so these only anchor each symbol's price scale.
var defaultCatalog = []Symbol{
	{Ticker: "AAPL", Name: "Apple Inc.", BasePrice: 178.5},
	{Ticker: "GOOGL", Name: "Alphabet Inc.", BasePrice: 141.2},
	{Ticker: "MSFT", Name: "Microsoft Corp.", BasePrice: 378.9},
	{Ticker: "AMZN", Name: "Amazon.com Inc.", BasePrice: 151.3},
	{Ticker: "TSLA", Name: "Tesla Inc.", BasePrice: 248.7},
	{Ticker: "NVDA", Name: "NVIDIA Corp.", BasePrice: 495.2},
	{Ticker: "META", Name: "Meta Platforms Inc.", BasePrice: 334.6},
}

// List returns the built-in symbol catalog.
func List() []Symbol {
	out := make([]Symbol, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// Lookup returns the catalog entry for ticker, or a default-priced entry
// when the ticker is unknown.
func Lookup(ticker string) Symbol {
	for _, s := range defaultCatalog {
		if s.Ticker == ticker {
			return s
		}
	}
	return Symbol{Ticker: ticker, Name: ticker, BasePrice: DefaultBasePrice}
}

// BasePrice returns the generator's starting price for ticker.
func BasePrice(ticker string) float64 {
	return Lookup(ticker).BasePrice
}

// LoadCatalog loads a symbol catalog from a JSON file.
func LoadCatalog(filePath string) (*SymbolList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbols file: %w", err)
	}

	var list SymbolList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse symbols file: %w", err)
	}

	return &list, nil
}

// SaveCatalog saves a symbol catalog to a JSON file.
func SaveCatalog(list *SymbolList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal symbols: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write symbols file: %w", err)
	}

	return nil
}
