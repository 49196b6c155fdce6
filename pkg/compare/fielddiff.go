package compare

import (
	"github.com/confdiff-inc/confdiff-engine/pkg/diff"
	"github.com/confdiff-inc/confdiff-engine/pkg/jsonutil"
	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

// diffTypeChars tags DiffInfo entries that carry a character-level script.
const diffTypeChars = "char-diff"

// DiffInfo carries the character-level edit script for one differing field.
type DiffInfo struct {
	Type     string         `json:"type"`
	Segments []diff.Segment `json:"segments"`
}

// compareFields reports which of the given fields disagree between two
// records, plus edit scripts for the fields whose rendered values fit under
// the length guard. Values absent on one side compare as the nil sentinel.
func compareFields(a, b tabular.Record, fields []string, opts Options) ([]string, map[string]DiffInfo) {
	var differences []string
	var details map[string]DiffInfo

	for _, field := range fields {
		va := a[field]
		vb := b[field]
		if canonicalEqual(normalizeValue(va, opts.Normalize), normalizeValue(vb, opts.Normalize)) {
			continue
		}

		differences = append(differences, field)

		sa := jsonutil.Stringify(va)
		sb := jsonutil.Stringify(vb)
		if len(sa) > opts.MaxDiffChars || len(sb) > opts.MaxDiffChars {
			// Too large to char-diff; the field still counts as
			// differing and renders whole-value.
			continue
		}

		if details == nil {
			details = make(map[string]DiffInfo)
		}
		details[field] = DiffInfo{
			Type:     diffTypeChars,
			Segments: diff.Chars(sa, sb, opts.SemanticCleanup),
		}
	}

	return differences, details
}
