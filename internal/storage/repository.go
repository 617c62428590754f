package storage

import (
	"database/sql"
	"errors"

	pq "github.com/lib/pq"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("storage: duplicate record")

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// rollback is deferred by transactional methods; it is a no-op after Commit.
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}
