package backtest

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLedgerCSV writes the per-day backtest ledger to path.
func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"date",
		"close",
		"action",
		"shares",
		"capital",
		"value",
		"return_percent",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			r.Date,
			fmtFloat(r.Close),
			string(r.Action),
			strconv.Itoa(r.Shares),
			fmtFloat(r.Capital),
			fmtFloat(r.Value),
			fmtFloat(r.ReturnPercent),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
