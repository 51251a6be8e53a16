package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err comes from a UNIQUE index. The
// storage layer is the final arbiter for uniqueness; service pre-checks
// only produce friendlier messages in the common case.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
