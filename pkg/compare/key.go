package compare

import (
	"strings"

	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

// Key identifies a comparison row: the ordered key column values in by-key
// mode, or the record's 0-based position in positional mode. Values hold the
// raw (unfolded) cell values; columns absent from a record map to nil.
type Key struct {
	Columns []string       `json:"columns"`
	Values  map[string]any `json:"values"`
}

// buildKey restricts a record to the key columns, in key-column order.
// Missing columns yield the nil sentinel rather than an error.
func buildKey(rec tabular.Record, keyColumns []string) Key {
	values := make(map[string]any, len(keyColumns))
	for _, col := range keyColumns {
		values[col] = rec[col]
	}
	return Key{Columns: append([]string(nil), keyColumns...), Values: values}
}

// positionKey is the key of a row aligned by dataset position.
func positionKey(index int) Key {
	return Key{
		Columns: []string{PositionColumn},
		Values:  map[string]any{PositionColumn: index},
	}
}

// indexString encodes a record's key for map lookup. Components are the
// normalized key column values, so composite keys match only when every
// component matches under the comparison's normalize option.
func indexString(rec tabular.Record, keyColumns []string, fold bool) string {
	var sb strings.Builder
	for _, col := range keyColumns {
		encodeCanonical(&sb, normalizeValue(rec[col], fold))
		sb.WriteByte(0x1f)
	}
	return sb.String()
}
