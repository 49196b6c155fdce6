package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/confdiff-inc/confdiff-engine/pkg/compare"
	"github.com/confdiff-inc/confdiff-engine/pkg/jsonutil"
)

// WriteCSV writes one line per comparison row: the key columns, the status,
// and the differing field names joined with ";". Row order matches the
// result.
func WriteCSV(w io.Writer, result *compare.Result) error {
	cw := csv.NewWriter(w)

	keyColumns := keyHeader(result)
	header := append(append([]string(nil), keyColumns...), "status", "differences")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range result.Rows {
		line := make([]string, 0, len(header))
		for _, col := range keyColumns {
			line = append(line, jsonutil.Stringify(row.Key.Values[col]))
		}
		line = append(line, string(row.Status), strings.Join(row.Differences, ";"))
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// keyHeader returns the key columns of the comparison, falling back to the
// positional column when no keys were configured.
func keyHeader(result *compare.Result) []string {
	if len(result.KeyColumns) > 0 {
		return result.KeyColumns
	}
	return []string{compare.PositionColumn}
}
