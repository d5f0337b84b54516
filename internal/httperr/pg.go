package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes surfaced by the booking constraints: the
// per-field interval exclusion constraint and the unique slot index.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsExclusionConflict reports whether err is the database rejecting a
// write via the slot constraints. The constraint is the ultimate arbiter
// for racing writes on the same field; callers translate it into the
// same conflict error as the application-level overlap check.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
}
