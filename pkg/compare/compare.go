// Package compare implements the row-reconciliation and diff engine: it
// aligns two tabular datasets by key or by position, classifies every
// aligned or orphaned row, and computes field-level and character-level
// differences for display. The engine is pure and call-scoped: it holds no
// state between invocations and never mutates its inputs, so concurrent
// comparisons are safe as long as callers do not mutate the datasets
// mid-call.
package compare

import (
	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

// Compare reconciles two datasets under the given options. It validates the
// options before touching either dataset; the only error it returns wraps
// apperrors.ErrConfiguration. Data-shape mismatches (missing columns, type
// drift) never fail a comparison — absent values compare as the nil
// sentinel and surface as differences or orphans.
func Compare(a, b *tabular.Dataset, opts Options) (*Result, error) {
	resolved, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	if a == nil {
		a = tabular.New("")
	}
	if b == nil {
		b = tabular.New("")
	}

	fields := effectiveFields(resolved, a, b)

	var rows []Row
	switch resolved.MatchMode {
	case MatchByKey:
		rows = reconcileByKey(a, b, fields, resolved)
	default:
		rows = reconcileByPosition(a, b, fields, resolved)
	}

	return assemble(a, b, resolved, fields, rows), nil
}

// effectiveFields resolves the compared column list: the explicit selection
// when one was given, otherwise the union of both datasets' columns in
// first-seen order (A's columns first).
func effectiveFields(opts Options, a, b *tabular.Dataset) []string {
	if opts.Fields != nil {
		return append([]string(nil), opts.Fields...)
	}
	return tabular.Union(a, b)
}
