package store

import "errors"

// Low-level database operation errors. Callers should use [errors.Is] to
// match against these values; the driver error stays in the chain.
var (
	// ErrOpeningConnection is returned when the driver rejects the DSN
	// before any network activity.
	ErrOpeningConnection = errors.New("error opening database connection")

	// ErrPingingDatabase is returned when the first round trip to the server
	// fails (unreachable host, rejected credentials, missing database).
	ErrPingingDatabase = errors.New("error connecting database (ping)")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only probe query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
