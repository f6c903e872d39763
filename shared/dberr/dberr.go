// Package dberr maps driver specific errors from postgres, mysql and sqlite3
// onto a small set of sentinels the repositories can branch on.
package dberr

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"hoteladmin/shared/constant"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
	ErrTableExists  = errors.New("table already exists")
	ErrConnection   = errors.New("database connection failed")
)

// Error keeps the driver error next to the sentinel it was mapped to.
type Error struct {
	Sentinel error
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Sentinel, e.Cause)
}

func (e *Error) Unwrap() []error {
	return []error{e.Sentinel, e.Cause}
}

// Map returns err wrapped in *Error when it matches a known class, or err
// unchanged otherwise.
func Map(err error) error {
	if err == nil {
		return nil
	}

	if sentinel := classify(err); sentinel != nil {
		return &Error{Sentinel: sentinel, Cause: err}
	}

	return err
}

func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case constant.PqErrorCodeUniqueViolation:
			return ErrDuplicateKey
		case constant.PqErrorCodeFkViolation:
			return ErrForeignKey
		case constant.PqErrorCodeDuplicateTable:
			return ErrTableExists
		}

		if pqErr.Code.Class() == "08" {
			return ErrConnection
		}

		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case constant.MySQLErrorDuplicateEntry:
			return ErrDuplicateKey
		case constant.MySQLErrorNoReferenced, constant.MySQLErrorRowIsReferenced:
			return ErrForeignKey
		case constant.MySQLErrorTableExists:
			return ErrTableExists
		}

		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrDuplicateKey
		case sqlite3.ErrConstraintForeignKey:
			return ErrForeignKey
		}

		switch sqliteErr.Code {
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB:
			return ErrConnection
		}

		if strings.Contains(sqliteErr.Error(), "already exists") {
			return ErrTableExists
		}

		return nil
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) || errors.As(err, &netErr) {
		return ErrConnection
	}

	return nil
}

func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

func IsForeignKey(err error) bool {
	return errors.Is(err, ErrForeignKey)
}

func IsTableExists(err error) bool {
	return errors.Is(err, ErrTableExists)
}

func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}
