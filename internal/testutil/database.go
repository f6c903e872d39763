// Package testutil opens throwaway sqlite3 stores for repository and service
// tests.
package testutil

import (
	"context"
	"hoteladmin/config"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/schema"
	"testing"

	"github.com/stretchr/testify/require"
)

// Config returns a sqlite3 in-memory configuration.
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hoteladmin-test"
	cfg.App.SessionTTLMinutes = 60
	cfg.App.DefaultIPAddress = "127.0.0.1"
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.Name = ":memory:"
	cfg.DB.MaxRetry = 1
	cfg.DB.ConnectTimeout = 5
	cfg.Cache.TTL = 60

	return cfg
}

// NewDatabase returns an initialized in-memory store closed with the test.
func NewDatabase(t testing.TB) *database.Connection {
	t.Helper()

	conn, err := database.New(Config())
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, schema.New(conn, mocks.NewOtel()).Initialize(context.Background()))

	return conn
}
