// Package source converts already-executed query results and plain row maps
// into datasets. Executing queries, managing connections and credentials
// stays with the caller; these adapters only drain rows.
package source

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/confdiff-inc/confdiff-engine/pkg/apperrors"
	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

// FromPgxRows drains a pgx result set into a dataset. The caller keeps
// ownership of the rows and should still defer rows.Close(); column order
// follows the query's select list.
func FromPgxRows(rows pgx.Rows, name string) (*tabular.Dataset, error) {
	fieldDescs := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = string(fd.Name)
	}

	d := tabular.New(name)
	d.AddColumns(columns...)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceRead, err)
		}

		rec := make(tabular.Record, len(columns))
		for i, col := range columns {
			rec[col] = values[i]
		}
		d.Append(columns, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceRead, err)
	}
	return d, nil
}
