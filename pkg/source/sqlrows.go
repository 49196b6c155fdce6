package source

import (
	"database/sql"
	"fmt"

	"github.com/confdiff-inc/confdiff-engine/pkg/apperrors"
	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

// FromSQLRows drains a database/sql result set into a dataset. It works with
// any registered driver (mssql, oracle, sqlite), so the engine never binds
// to one; the caller keeps ownership of the rows and should still defer
// rows.Close().
func FromSQLRows(rows *sql.Rows, name string) (*tabular.Dataset, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceRead, err)
	}

	d := tabular.New(name)
	d.AddColumns(columns...)

	values := make([]any, len(columns))
	scanArgs := make([]any, len(columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceRead, err)
		}

		rec := make(tabular.Record, len(columns))
		for i, col := range columns {
			rec[col] = cellValue(values[i])
		}
		d.Append(columns, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceRead, err)
	}
	return d, nil
}

// cellValue unwraps driver-specific scan results into comparable values.
// Drivers without type information hand back []byte for text columns.
func cellValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case sql.RawBytes:
		return string(val)
	default:
		return v
	}
}
