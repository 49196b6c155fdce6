package compare

import "github.com/confdiff-inc/confdiff-engine/pkg/tabular"

// Status classifies one comparison row.
type Status string

const (
	StatusMatch   Status = "match"
	StatusDiffer  Status = "differ"
	StatusOnlyInA Status = "only_in_a"
	StatusOnlyInB Status = "only_in_b"
)

// Row is one classified output row of a reconciliation.
type Row struct {
	Key    Key    `json:"key"`
	Status Status `json:"status"`

	// DataA and DataB hold the raw records; nil on the side where the row
	// is absent. Values are never mutated by normalization.
	DataA tabular.Record `json:"data_a,omitempty"`
	DataB tabular.Record `json:"data_b,omitempty"`

	// Differences names the fields that disagree, in field order.
	// Non-empty exactly when Status is StatusDiffer.
	Differences []string `json:"differences,omitempty"`

	// DiffDetails maps differing field names to their edit scripts.
	// Fields over the length guard are absent here.
	DiffDetails map[string]DiffInfo `json:"diff_details,omitempty"`
}

// reconcileByKey aligns the datasets by key columns. Output order is all
// A-driven rows in A's original order, then unmatched B rows in B's original
// order; the rendering layer depends on this order staying stable.
//
// Only B is indexed and consumed: duplicate keys within A each emit their own
// row, all aligned against the same indexed B record.
func reconcileByKey(a, b *tabular.Dataset, fields []string, opts Options) []Row {
	// Index B by key. Duplicate keys within B overwrite earlier entries
	// (last-write-wins), a documented limitation of key-based alignment.
	index := make(map[string]int, b.Len())
	for i, rec := range b.Records {
		index[indexString(rec, opts.KeyColumns, opts.Normalize)] = i
	}

	rows := make([]Row, 0, a.Len()+b.Len())
	consumed := make([]bool, b.Len())

	for _, recA := range a.Records {
		key := buildKey(recA, opts.KeyColumns)
		j, found := index[indexString(recA, opts.KeyColumns, opts.Normalize)]
		if !found {
			rows = append(rows, Row{Key: key, Status: StatusOnlyInA, DataA: recA})
			continue
		}
		consumed[j] = true

		recB := b.Records[j]
		differences, details := compareFields(recA, recB, fields, opts)
		status := StatusMatch
		if len(differences) > 0 {
			status = StatusDiffer
		}
		rows = append(rows, Row{
			Key:         key,
			Status:      status,
			DataA:       recA,
			DataB:       recB,
			Differences: differences,
			DiffDetails: details,
		})
	}

	for j, recB := range b.Records {
		if consumed[j] {
			continue
		}
		rows = append(rows, Row{
			Key:    buildKey(recB, opts.KeyColumns),
			Status: StatusOnlyInB,
			DataB:  recB,
		})
	}

	return rows
}

// reconcileByPosition aligns the datasets index by index. The shorter side's
// missing rows classify as orphans of the longer side; output is index order.
func reconcileByPosition(a, b *tabular.Dataset, fields []string, opts Options) []Row {
	n := a.Len()
	if b.Len() > n {
		n = b.Len()
	}

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		var recA, recB tabular.Record
		if i < a.Len() {
			recA = a.Records[i]
		}
		if i < b.Len() {
			recB = b.Records[i]
		}

		row := Row{Key: positionKey(i)}
		switch {
		case recA != nil && recB != nil:
			differences, details := compareFields(recA, recB, fields, opts)
			row.Status = StatusMatch
			if len(differences) > 0 {
				row.Status = StatusDiffer
			}
			row.DataA = recA
			row.DataB = recB
			row.Differences = differences
			row.DiffDetails = details
		case recA != nil:
			row.Status = StatusOnlyInA
			row.DataA = recA
		default:
			row.Status = StatusOnlyInB
			row.DataB = recB
		}
		rows = append(rows, row)
	}

	return rows
}
