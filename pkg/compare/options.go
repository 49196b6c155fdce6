package compare

import (
	"fmt"

	"github.com/confdiff-inc/confdiff-engine/pkg/apperrors"
)

// MatchMode selects how rows from the two datasets are aligned.
type MatchMode string

const (
	// MatchByKey aligns rows whose key columns hold equal values.
	MatchByKey MatchMode = "by-key"
	// MatchByPosition aligns rows by their index in each dataset.
	MatchByPosition MatchMode = "by-position"
)

// PositionColumn is the synthetic key column used in positional mode.
const PositionColumn = "_position"

// DefaultMaxDiffChars is the char-diff length guard applied when Options
// leaves MaxDiffChars unset. Fields whose rendered values exceed it are
// still reported as differing but get no edit script.
const DefaultMaxDiffChars = 10000

// Options configures a comparison. The zero value is usable: with no key
// columns it falls back to positional matching with exact equality.
type Options struct {
	// KeyColumns names the columns that identify a row, in order.
	// Empty means positional matching.
	KeyColumns []string

	// MatchMode forces by-key or by-position alignment. Empty derives the
	// mode from KeyColumns. MatchByKey with no key columns is a
	// configuration error, never a silent downgrade to positional mode.
	MatchMode MatchMode

	// Normalize folds values before equality checks: whitespace trimmed
	// and collapsed, strings lowercased, numeric and boolean strings
	// compared as numbers and booleans. Stored row data is never folded.
	Normalize bool

	// Fields selects the columns compared and reported, in order. nil
	// means the union of both datasets' columns; an explicitly empty
	// list is a configuration error.
	Fields []string

	// MaxDiffChars guards char-diffing of very large values. Zero applies
	// DefaultMaxDiffChars.
	MaxDiffChars int

	// SemanticCleanup merges cosmetically fragmented edit-script segments
	// for nicer highlighting.
	SemanticCleanup bool
}

// resolve validates the options and fills derived defaults. It inspects no
// dataset content, so invalid configuration is rejected before any
// reconciliation work.
func (o Options) resolve() (Options, error) {
	if o.MatchMode == "" {
		if len(o.KeyColumns) > 0 {
			o.MatchMode = MatchByKey
		} else {
			o.MatchMode = MatchByPosition
		}
	}

	switch o.MatchMode {
	case MatchByKey:
		if len(o.KeyColumns) == 0 {
			return o, fmt.Errorf("%w: by-key matching requires at least one key column", apperrors.ErrConfiguration)
		}
	case MatchByPosition:
		// Key columns, if any, are ignored in positional mode.
	default:
		return o, fmt.Errorf("%w: unknown match mode %q", apperrors.ErrConfiguration, o.MatchMode)
	}

	if o.Fields != nil && len(o.Fields) == 0 {
		return o, fmt.Errorf("%w: fields list is empty", apperrors.ErrConfiguration)
	}

	if o.MaxDiffChars <= 0 {
		o.MaxDiffChars = DefaultMaxDiffChars
	}

	return o, nil
}
