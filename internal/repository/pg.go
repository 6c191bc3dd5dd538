package repository

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err was caused by a unique constraint.
// Duplicate-insert races (e.g. two simultaneous registrations with the same
// email) are resolved by the database and surfaced through this check.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
