package apperrors

import "errors"

var (
	// ErrConfiguration rejects invalid comparison options before any
	// reconciliation work starts. Match with errors.Is.
	ErrConfiguration = errors.New("invalid comparison configuration")

	// ErrSourceRead reports a failure while draining rows from a source
	// adapter into a dataset.
	ErrSourceRead = errors.New("failed to read source rows")
)
