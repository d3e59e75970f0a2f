package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user row matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrOwnerNotFound is returned when the users table holds no admin row.
	ErrOwnerNotFound = errors.New("admin user not found")

	ErrProjectNotFound  = errors.New("project not found")
	ErrSkillNotFound    = errors.New("skill not found")
	ErrTimelineNotFound = errors.New("timeline event not found")
	ErrContactNotFound  = errors.New("contact not found")

	// ErrMalformedID is returned when PostgreSQL refuses an identifier that
	// is not a valid UUID (invalid_text_representation, 22P02).
	ErrMalformedID = errors.New("malformed id")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
