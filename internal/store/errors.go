package store

import "errors"

// ErrUnsupportedDriver is returned by [NewCache] for a driver this package
// does not implement (for example "http", which lives in the adapter
// package).
var ErrUnsupportedDriver = errors.New("unsupported cache driver")

// Low-level database operation errors. These are returned (or wrapped) by
// [SQLCache] methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the cache table
	// fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails, after
	// retries for retryable errors are exhausted.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrEncodingValue is returned when a value cannot be encoded to JSON
	// before being stored.
	ErrEncodingValue = errors.New("failed to encode cache value")

	// ErrDecodingValue is returned when a stored payload is not valid JSON.
	ErrDecodingValue = errors.New("failed to decode cache value")
)
