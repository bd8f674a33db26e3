package data

import (
	"path/filepath"
	"testing"
)

func TestLookup(t *testing.T) {
	s := Lookup("AAPL")
	if s.Name != "Apple Inc." || s.BasePrice != 178.5 {
		t.Errorf("AAPL = %+v", s)
	}

	unknown := Lookup("ZZZZ")
	if unknown.Ticker != "ZZZZ" || unknown.Name != "ZZZZ" || unknown.BasePrice != DefaultBasePrice {
		t.Errorf("unknown ticker = %+v", unknown)
	}
}

func TestListIsACopy(t *testing.T) {
	list := List()
	if len(list) == 0 {
		t.Fatal("empty catalog")
	}

	list[0].BasePrice = -1
	if BasePrice(List()[0].Ticker) == -1 {
		t.Error("mutating List() result leaked into the catalog")
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "symbols.json")

	in := &SymbolList{
		UpdatedAt: "2024-06-01T00:00:00Z",
		Symbols: []Symbol{
			{Ticker: "ABC", Name: "ABC Corp.", BasePrice: 12.5},
		},
	}
	if err := SaveCatalog(in, path); err != nil {
		t.Fatal(err)
	}

	out, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.UpdatedAt != in.UpdatedAt || len(out.Symbols) != 1 {
		t.Fatalf("round trip = %+v", out)
	}
	if out.Symbols[0] != in.Symbols[0] {
		t.Errorf("symbol = %+v, want %+v", out.Symbols[0], in.Symbols[0])
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
