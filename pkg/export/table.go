package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/confdiff-inc/confdiff-engine/pkg/compare"
	"github.com/confdiff-inc/confdiff-engine/pkg/diff"
	"github.com/confdiff-inc/confdiff-engine/pkg/jsonutil"
)

var (
	deletedText  = color.New(color.FgRed, color.CrossedOut).SprintFunc()
	insertedText = color.New(color.FgGreen).SprintFunc()
)

// RenderSummary writes the per-status counts as a text table.
func RenderSummary(w io.Writer, result *compare.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Total", "Matches", "Differs", fmt.Sprintf("Only in %s", result.SourceA), fmt.Sprintf("Only in %s", result.SourceB)})
	table.SetBorder(false)
	table.Append([]string{
		fmt.Sprintf("%d", result.Summary.Total),
		fmt.Sprintf("%d", result.Summary.Matches),
		fmt.Sprintf("%d", result.Summary.Differs),
		fmt.Sprintf("%d", result.Summary.OnlyInA),
		fmt.Sprintf("%d", result.Summary.OnlyInB),
	})
	table.Render()
}

// RenderDiffs writes a side-by-side table per differing row: one line per
// differing field, with the A side highlighting deleted spans and the B side
// highlighting inserted spans. Fields without an edit script (over the
// length guard) render whole-value.
func RenderDiffs(w io.Writer, result *compare.Result) {
	for _, row := range result.Rows {
		if row.Status != compare.StatusDiffer {
			continue
		}

		fmt.Fprintf(w, "key: %s\n", keyLabel(row))

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Field", result.SourceA, result.SourceB})
		table.SetAutoWrapText(false)
		table.SetBorder(false)

		for _, field := range row.Differences {
			info, ok := row.DiffDetails[field]
			if !ok {
				table.Append([]string{
					field,
					jsonutil.Stringify(row.DataA[field]),
					jsonutil.Stringify(row.DataB[field]),
				})
				continue
			}
			sideA, sideB := ColorSides(info.Segments)
			table.Append([]string{field, sideA, sideB})
		}

		table.Render()
		fmt.Fprintln(w)
	}
}

// ColorSides renders an edit script as the two per-side display strings:
// the A side is equal+delete segments with deletions highlighted, the B
// side is equal+insert segments with insertions highlighted.
func ColorSides(segs []diff.Segment) (string, string) {
	var a, b strings.Builder
	for _, seg := range segs {
		switch seg.Type {
		case diff.SegmentEqual:
			a.WriteString(seg.Value)
			b.WriteString(seg.Value)
		case diff.SegmentDelete:
			a.WriteString(deletedText(seg.Value))
		case diff.SegmentInsert:
			b.WriteString(insertedText(seg.Value))
		}
	}
	return a.String(), b.String()
}

func keyLabel(row compare.Row) string {
	parts := make([]string, 0, len(row.Key.Columns))
	for _, col := range row.Key.Columns {
		parts = append(parts, fmt.Sprintf("%s=%s", col, jsonutil.Stringify(row.Key.Values[col])))
	}
	return strings.Join(parts, ", ")
}
