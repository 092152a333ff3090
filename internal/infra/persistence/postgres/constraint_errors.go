package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"
	pgValueTooLong    = "22001" // string_data_right_truncation
)

// uniqueViolation reports whether err was raised by a unique index and, when
// the driver tells us, the text naming the offending index or column.
func uniqueViolation(err error) (detail string, ok bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == pgUniqueViolation
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	// SQLite: "UNIQUE constraint failed: users.email"
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, pgUniqueViolation) {
		return errMsg, true
	}

	return "", false
}

// valueTooLong reports whether err was raised by a column length limit.
func valueTooLong(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgValueTooLong
}
