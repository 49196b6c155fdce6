// Package export serializes comparison results for files and terminals.
// It consumes the engine's output without reaching back into it, preserving
// the reconciler's row order everywhere.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/confdiff-inc/confdiff-engine/pkg/compare"
)

// WriteJSON writes the full comparison result as indented JSON.
func WriteJSON(w io.Writer, result *compare.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode comparison result: %w", err)
	}
	return nil
}
