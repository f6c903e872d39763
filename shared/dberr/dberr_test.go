package dberr_test

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"hoteladmin/shared/dberr"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "postgres unique", err: &pq.Error{Code: "23505"}, want: dberr.ErrDuplicateKey},
		{name: "postgres foreign key", err: &pq.Error{Code: "23503"}, want: dberr.ErrForeignKey},
		{name: "postgres duplicate table", err: &pq.Error{Code: "42P07"}, want: dberr.ErrTableExists},
		{name: "postgres connection class", err: &pq.Error{Code: "08006"}, want: dberr.ErrConnection},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062}, want: dberr.ErrDuplicateKey},
		{name: "mysql foreign key", err: &mysql.MySQLError{Number: 1452}, want: dberr.ErrForeignKey},
		{name: "mysql table exists", err: &mysql.MySQLError{Number: 1050}, want: dberr.ErrTableExists},
		{name: "sqlite unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: dberr.ErrDuplicateKey},
		{name: "sqlite primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: dberr.ErrDuplicateKey},
		{name: "sqlite foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: dberr.ErrForeignKey},
		{name: "bad conn", err: fmt.Errorf("query: %w", driver.ErrBadConn), want: dberr.ErrConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := dberr.Map(tt.err)

			assert.ErrorIs(t, mapped, tt.want)
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}

func TestMapPassthrough(t *testing.T) {
	assert.NoError(t, dberr.Map(nil))

	plain := errors.New("syntax error")
	assert.Equal(t, plain, dberr.Map(plain))

	other := &pq.Error{Code: "42601"}
	assert.Equal(t, error(other), dberr.Map(other))
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("insert customer: %w", dberr.Map(&pq.Error{Code: "23505"}))

	assert.True(t, dberr.IsDuplicateKey(wrapped))
	assert.False(t, dberr.IsForeignKey(wrapped))
	assert.False(t, dberr.IsTableExists(wrapped))
	assert.False(t, dberr.IsConnection(wrapped))
}
