package storage

import (
	"errors"
	"strings"

	sqlite "github.com/mattn/go-sqlite3"
)

// IsUniqueViolation reports whether err was caused by a unique index or
// constraint rejecting a write. The unique indexes on slugs, names, and
// filenames are the authoritative uniqueness guard; repositories use this to
// translate the raw driver error into a domain conflict error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite.ErrConstraintPrimaryKey
	}

	// Driver wrappers do not always preserve the typed error.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
