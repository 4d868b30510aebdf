package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when a document read targets a key that
	// has never been set (or has been deleted).
	ErrKeyNotFound = errors.New("key not found in document")

	// ErrLocalSessionNotFound is returned when no cached panel session
	// exists in the user document, i.e. the user has never logged in or
	// has logged out.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// document methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a
	// result row fails.
	ErrScanningRow = errors.New("failed to scan document row")
)
