package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// DuplicateKeyError reports a unique constraint violation. Field holds the
// JSON name of the offending column, e.g. "email".
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// CheckViolationError reports a CHECK constraint violation. Constraints are
// named <table>_<column>_check, so Field is derived from the name.
type CheckViolationError struct {
	Field      string
	Constraint string
	Message    string
	Err        error
}

func (e *CheckViolationError) Error() string {
	return fmt.Sprintf("check constraint %s violated: %s", e.Constraint, e.Message)
}

func (e *CheckViolationError) Unwrap() error {
	return e.Err
}

// ValueTooLongError reports a value rejected by a column length limit
// (string_data_right_truncation). PostgreSQL names the column only in some
// cases, so Field may be empty.
type ValueTooLongError struct {
	Field string
	Err   error
}

func (e *ValueTooLongError) Error() string {
	if e.Field == "" {
		return "value too long"
	}
	return fmt.Sprintf("value too long for %s", e.Field)
}

func (e *ValueTooLongError) Unwrap() error {
	return e.Err
}

// checkMessages mirrors the column rules declared in the schema.
var checkMessages = map[string]string{
	"users_role_check":                  "Role must be admin or visitor",
	"users_name_check":                  "Name must be between 2 and 50 characters",
	"users_title_check":                 "Title cannot be more than 100 characters",
	"projects_title_check":              "Title cannot be more than 100 characters",
	"projects_description_check":        "Description cannot be more than 500 characters",
	"projects_tags_check":               "Please add at least one tag",
	"projects_categories_check":         "Please select a valid category",
	"skills_title_check":                "Title cannot be more than 50 characters",
	"skills_icon_check":                 "Please select a valid icon",
	"skills_skills_check":               "Please add at least one skill",
	"timeline_events_title_check":       "Title cannot be more than 100 characters",
	"timeline_events_description_check": "Description cannot be more than 500 characters",
	"contacts_name_check":               "Name cannot be more than 50 characters",
	"contacts_subject_check":            "Subject cannot be more than 100 characters",
	"contacts_message_check":            "Message cannot be more than 1000 characters",
}

// postgresError returns the SQLSTATE code of err, or "" when err did not
// come from the PostgreSQL driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// translateError maps driver errors with a domain meaning onto store errors.
// Anything else is returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return &DuplicateKeyError{
			Field: columnFromConstraint(pgErr.TableName, pgErr.ConstraintName, "_key"),
			Err:   err,
		}
	case pgerrcode.CheckViolation:
		message, ok := checkMessages[pgErr.ConstraintName]
		if !ok {
			message = "Invalid value"
		}
		return &CheckViolationError{
			Field:      columnFromConstraint(pgErr.TableName, pgErr.ConstraintName, "_check"),
			Constraint: pgErr.ConstraintName,
			Message:    message,
			Err:        err,
		}
	case pgerrcode.StringDataRightTruncationDataException:
		return &ValueTooLongError{Field: camelCase(pgErr.ColumnName), Err: err}
	case pgerrcode.InvalidTextRepresentation:
		return fmt.Errorf("%w: %w", ErrMalformedID, err)
	}

	return err
}

// columnFromConstraint turns "users_email_key" into "email" and
// "users_footer_description_check" into "footerDescription".
func columnFromConstraint(table, constraint, suffix string) string {
	column := strings.TrimSuffix(constraint, suffix)
	if table != "" {
		column = strings.TrimPrefix(column, table+"_")
	} else if i := strings.Index(column, "_"); i >= 0 {
		column = column[i+1:]
	}

	return camelCase(column)
}

func camelCase(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i > 0 {
			b.WriteString(strings.ToUpper(p[:1]))
			b.WriteString(p[1:])
			continue
		}
		b.WriteString(p)
	}
	return b.String()
}
