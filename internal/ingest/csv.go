package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrNoData is returned for files with no header row or no data rows.
// Callers surface it as an empty dataset plus a user notification; it is
// never fatal.
var ErrNoData = errors.New("file contains no usable rows")

// Field is one ingested cell, resolved to either text or a number at
// parse time so untyped values never flow into the analytics core.
type Field struct {
	Text    string  `json:"text,omitempty"`
	Number  float64 `json:"number,omitempty"`
	Numeric bool    `json:"numeric"`
}

// Row is one ingested record, keyed by the original header names.
type Row map[string]Field

// syntheticEpoch starts the date sequence assigned to rows whose file has
// no recognizable date column.
var syntheticEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// knownNumeric headers are always parsed as numbers, defaulting to 0 when
// unparseable.
var knownNumeric = []string{"price", "close", "open", "high", "low", "volume"}

// ParseCSV reads a delimited upload into generic rows. Column classes are
// decided once from the header: headers containing "date" stay strings,
// known price/volume headers parse as float64 (0 on failure), everything
// else is numeric when it parses and text otherwise. Rows without a date
// column get sequential synthetic dates starting 2020-01-01.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrNoData
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	hasDate := false
	for _, h := range headers {
		if isDateHeader(h) {
			hasDate = true
			break
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for rowIdx, rec := range records[1:] {
		row := Row{}
		for i, h := range headers {
			if i >= len(rec) {
				break
			}
			raw := strings.TrimSpace(rec[i])
			switch {
			case isDateHeader(h):
				row[h] = Field{Text: raw}
			case isKnownNumericHeader(h):
				n, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					n = 0
				}
				row[h] = Field{Number: n, Numeric: true}
			default:
				if n, err := strconv.ParseFloat(raw, 64); err == nil {
					row[h] = Field{Number: n, Numeric: true}
				} else {
					row[h] = Field{Text: raw}
				}
			}
		}
		if !hasDate {
			row["date"] = Field{Text: syntheticEpoch.AddDate(0, 0, rowIdx).Format("2006-01-02")}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoData
	}
	return rows, nil
}

func isDateHeader(h string) bool {
	return strings.Contains(strings.ToLower(h), "date")
}

func isKnownNumericHeader(h string) bool {
	lower := strings.ToLower(h)
	for _, k := range knownNumeric {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
