package app

import "errors"

// Sentinel kinds for catalog errors.
var (
	// ErrUnknownQuery is returned for a query name the catalog does not hold.
	ErrUnknownQuery = errors.New("unknown query")
	// ErrNotImplemented is returned for a registered query that has no
	// evaluator yet.
	ErrNotImplemented = errors.New("query not implemented")
	// ErrDuplicateQuery is returned when two queries share a name.
	ErrDuplicateQuery = errors.New("duplicate query")
)
