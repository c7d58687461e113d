package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"hajj-guide/internal/domain/errs"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// MySQL server error numbers
const (
	myDuplicateEntry   = 1062
	myRowIsReferenced  = 1451
	myNoReferencedRow  = 1452
	myRowIsReferenced2 = 1217
	myNoReferencedRow2 = 1216
	myCheckViolation   = 3819
	myBadNull          = 1048
)

// ClassifyError maps a driver error onto the error kinds in package errs.
// The returned error wraps both the kind and the original error. Store
// failures that match no constraint kind are reported as ErrStoreUnavailable.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kindOf(err), err)
}

func kindOf(err error) error {
	if IsConnectionError(err) {
		return errs.ErrStoreUnavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.HasSuffix(strings.ToLower(pgErr.ConstraintName), "_pkey") {
				return errs.ErrDuplicateKey
			}
			return errs.ErrUniquenessViolation
		case pgForeignKeyViolation:
			// "update or delete on table ... violates foreign key constraint"
			// means the row still has dependents.
			if strings.HasPrefix(pgErr.Message, "update or delete") {
				return errs.ErrIntegrityViolation
			}
			return errs.ErrForeignKeyMissing
		case pgCheckViolation, pgNotNullViolation:
			return errs.ErrInvalidInput
		}
		return errs.ErrStoreUnavailable
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case myDuplicateEntry:
			if strings.Contains(myErr.Message, "PRIMARY") {
				return errs.ErrDuplicateKey
			}
			return errs.ErrUniquenessViolation
		case myRowIsReferenced, myRowIsReferenced2:
			return errs.ErrIntegrityViolation
		case myNoReferencedRow, myNoReferencedRow2:
			return errs.ErrForeignKeyMissing
		case myCheckViolation, myBadNull:
			return errs.ErrInvalidInput
		}
		return errs.ErrStoreUnavailable
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.ErrForeignKeyMissing
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.ErrNotFound
	}

	// SQLite reports constraints only through the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "PRIMARY KEY constraint failed"):
		return errs.ErrDuplicateKey
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return errs.ErrForeignKeyMissing
	case strings.Contains(msg, "CHECK constraint failed"), strings.Contains(msg, "NOT NULL constraint failed"):
		return errs.ErrInvalidInput
	}

	return errs.ErrStoreUnavailable
}

// IsConnectionError reports whether err means the store itself is unreachable,
// as opposed to a rejected statement.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
