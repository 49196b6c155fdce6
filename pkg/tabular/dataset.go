package tabular

import "sort"

// Record is one row of a dataset: a mapping from column name to a cell value.
// Cell values are JSON-shaped: nil, bool, string, any Go numeric type
// (including json.Number), []any, and map[string]any. Driver-specific scalars
// such as time.Time are tolerated; the comparison layer folds them to strings.
type Record map[string]any

// Dataset is one side of a comparison: an ordered sequence of records plus
// the ordered union of column names seen across them (first-seen order).
type Dataset struct {
	// Name is the display name of the source (schema.table, query label,
	// or filename).
	Name string

	// Columns is the union of column names across all records, in the
	// order they were first seen.
	Columns []string

	// Records holds the rows in source order.
	Records []Record

	seen map[string]struct{}
}

// New creates an empty dataset with the given display name.
func New(name string) *Dataset {
	return &Dataset{
		Name: name,
		seen: make(map[string]struct{}),
	}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// AddColumns registers column names, preserving first-seen order and
// ignoring names already registered.
func (d *Dataset) AddColumns(cols ...string) {
	if d.seen == nil {
		d.seen = make(map[string]struct{}, len(d.Columns))
		for _, c := range d.Columns {
			d.seen[c] = struct{}{}
		}
	}
	for _, c := range cols {
		if _, ok := d.seen[c]; ok {
			continue
		}
		d.seen[c] = struct{}{}
		d.Columns = append(d.Columns, c)
	}
}

// Append adds a record. cols gives the record's own column order, which
// extends the dataset's column list with any names not yet seen. Record keys
// missing from cols are appended in sorted order so the column union stays
// deterministic even for callers that only have an unordered map.
func (d *Dataset) Append(cols []string, rec Record) {
	d.AddColumns(cols...)

	var extra []string
	for k := range rec {
		if _, ok := d.seen[k]; !ok {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		d.AddColumns(extra...)
	}

	d.Records = append(d.Records, rec)
}

// FromMaps builds a dataset from plain row maps. Go maps carry no key order,
// so newly seen columns are appended in sorted order per row; loaders that
// know the real column order should use Append with explicit columns instead.
func FromMaps(name string, rows []map[string]any) *Dataset {
	d := New(name)
	for _, row := range rows {
		d.Append(nil, Record(row))
	}
	return d
}

// Union returns the combined column list of two datasets: a's columns in
// order, followed by b's columns not present in a.
func Union(a, b *Dataset) []string {
	var cols []string
	seen := make(map[string]struct{})
	add := func(names []string) {
		for _, c := range names {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			cols = append(cols, c)
		}
	}
	if a != nil {
		add(a.Columns)
	}
	if b != nil {
		add(b.Columns)
	}
	return cols
}
