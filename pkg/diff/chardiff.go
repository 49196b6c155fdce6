package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SegmentType classifies one span of a character-level edit script.
type SegmentType string

const (
	SegmentEqual  SegmentType = "equal"
	SegmentInsert SegmentType = "insert"
	SegmentDelete SegmentType = "delete"
)

// Segment is one span of an edit script. Concatenating the values of all
// equal and delete segments reproduces the A string exactly; equal and
// insert segments reproduce the B string.
type Segment struct {
	Type  SegmentType `json:"type"`
	Value string      `json:"value"`
}

// Chars computes a character-level Myers edit script from a to b.
// semanticCleanup merges cosmetically fragmented segments into spans that
// read better when highlighted; it never breaks the reconstruction
// invariant.
func Chars(a, b string, semanticCleanup bool) []Segment {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	if semanticCleanup {
		diffs = dmp.DiffCleanupSemantic(diffs)
	}

	segs := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		segs = append(segs, Segment{Type: segmentType(d.Type), Value: d.Text})
	}
	return segs
}

// SideA reconstructs the A string from an edit script.
func SideA(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		if s.Type == SegmentEqual || s.Type == SegmentDelete {
			sb.WriteString(s.Value)
		}
	}
	return sb.String()
}

// SideB reconstructs the B string from an edit script.
func SideB(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		if s.Type == SegmentEqual || s.Type == SegmentInsert {
			sb.WriteString(s.Value)
		}
	}
	return sb.String()
}

func segmentType(op diffmatchpatch.Operation) SegmentType {
	switch op {
	case diffmatchpatch.DiffDelete:
		return SegmentDelete
	case diffmatchpatch.DiffInsert:
		return SegmentInsert
	default:
		return SegmentEqual
	}
}
