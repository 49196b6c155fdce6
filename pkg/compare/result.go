package compare

import (
	"time"

	"github.com/google/uuid"

	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

// Result is a completed comparison: the ordered row sequence, its summary,
// and the metadata rendering layers need (source names, effective key
// columns and fields). Row order is exactly what the reconciler produced.
type Result struct {
	RunID      uuid.UUID `json:"run_id"`
	SourceA    string    `json:"source_a"`
	SourceB    string    `json:"source_b"`
	MatchMode  MatchMode `json:"match_mode"`
	KeyColumns []string  `json:"key_columns,omitempty"`
	Fields     []string  `json:"fields"`
	Normalized bool      `json:"normalized"`
	Timestamp  time.Time `json:"timestamp"`
	Rows       []Row     `json:"rows"`
	Summary    Summary   `json:"summary"`
}

// assemble packages rows, summary and metadata into a Result. No business
// logic lives here; row order passes through unchanged.
func assemble(a, b *tabular.Dataset, opts Options, fields []string, rows []Row) *Result {
	res := &Result{
		RunID:      uuid.New(),
		MatchMode:  opts.MatchMode,
		Fields:     fields,
		Normalized: opts.Normalize,
		Timestamp:  time.Now(),
		Rows:       rows,
		Summary:    Summarize(rows),
	}
	if opts.MatchMode == MatchByKey {
		res.KeyColumns = append([]string(nil), opts.KeyColumns...)
	}
	if a != nil {
		res.SourceA = a.Name
	}
	if b != nil {
		res.SourceB = b.Name
	}
	return res
}
