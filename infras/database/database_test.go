package database_test

import (
	"context"
	"errors"
	"hoteladmin/config"
	"hoteladmin/infras/database"
	"hoteladmin/shared/dberr"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(name string) *config.Config {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.Name = name
	cfg.DB.MaxRetry = 3
	cfg.DB.RetryWaitTime = 0
	cfg.DB.ConnectTimeout = 5

	return cfg
}

func TestNew(t *testing.T) {
	conn, err := database.New(sqliteConfig(filepath.Join(t.TempDir(), "hotel.db")))
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()

	assert.True(t, conn.IsConnected(ctx))
	assert.Equal(t, config.DriverSQLite, conn.DriverName())

	db, err := conn.Handle(ctx)
	require.NoError(t, err)

	var one int
	require.NoError(t, db.GetContext(ctx, &one, "SELECT 1"))
	assert.Equal(t, 1, one)
}

func TestNewRetriesThenFails(t *testing.T) {
	start := time.Now()

	conn, err := database.New(sqliteConfig(filepath.Join(t.TempDir(), "missing", "dir", "hotel.db")))

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, dberr.ErrConnection)
	assert.Contains(t, err.Error(), "3 attempts")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewUnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig("x.db")
	cfg.DB.Driver = "oracle"

	_, err := database.New(cfg)

	assert.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	conn, err := database.New(sqliteConfig(":memory:"))
	require.NoError(t, err)

	ctx := context.Background()

	assert.NoError(t, conn.Close())
	assert.NoError(t, conn.Close())
	assert.False(t, conn.IsConnected(ctx))

	_, err = conn.Handle(ctx)
	assert.ErrorIs(t, err, database.ErrClosed)
}

func TestConnectAfterClose(t *testing.T) {
	conn, err := database.New(sqliteConfig(filepath.Join(t.TempDir(), "hotel.db")))
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Connect(ctx))

	t.Cleanup(func() { _ = conn.Close() })

	assert.True(t, conn.IsConnected(ctx))
}

func TestWithTx(t *testing.T) {
	conn, err := database.New(sqliteConfig(":memory:"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()
	db, err := conn.Handle(ctx)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)")
	require.NoError(t, err)

	count := func() int {
		var n int
		require.NoError(t, db.GetContext(ctx, &n, "SELECT COUNT(*) FROM items"))

		return n
	}

	err = conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO items (id, name) VALUES (1, 'a')")

		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count())

	boom := errors.New("boom")
	err = conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO items (id, name) VALUES (2, 'b')"); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, count())

	assert.Panics(t, func() {
		_ = conn.WithTx(ctx, func(tx *sqlx.Tx) error {
			_, _ = tx.ExecContext(ctx, "INSERT INTO items (id, name) VALUES (3, 'c')")

			panic("unexpected")
		})
	})
	assert.Equal(t, 1, count())
}

func TestHandleReconnectsLostHandle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	require.NoError(t, os.Mkdir(dir, 0o755))

	conn, err := database.New(sqliteConfig(filepath.Join(dir, "hotel.db")))
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()

	lost, err := conn.Handle(ctx)
	require.NoError(t, err)

	_, err = lost.ExecContext(ctx, "CREATE TABLE items (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)

	_, err = lost.ExecContext(ctx, "INSERT INTO items (id) VALUES (1)")
	require.NoError(t, err)

	require.NoError(t, lost.Close())

	fresh, err := conn.Handle(ctx)
	require.NoError(t, err)
	assert.NotSame(t, lost, fresh)
	assert.True(t, conn.IsConnected(ctx))

	var count int
	require.NoError(t, fresh.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"))
	assert.Equal(t, 1, count)

	require.NoError(t, fresh.Close())
	require.NoError(t, os.RemoveAll(dir))

	_, err = conn.Handle(ctx)
	assert.ErrorIs(t, err, dberr.ErrConnection)
	assert.False(t, conn.IsConnected(ctx))
}
