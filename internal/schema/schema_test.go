package schema_test

import (
	"context"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/schema"
	"hoteladmin/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnection(t *testing.T) *database.Connection {
	t.Helper()

	conn, err := database.New(testutil.Config())
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func countTables(t *testing.T, conn *database.Connection) int {
	t.Helper()

	db, err := conn.Handle(context.Background())
	require.NoError(t, err)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'"))

	return count
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := newConnection(t)
	manager := schema.New(conn, mocks.NewOtel())

	require.NoError(t, manager.Initialize(ctx))
	require.NoError(t, manager.Initialize(ctx))

	assert.Equal(t, len(schema.Tables), countTables(t, conn))

	missing, err := manager.Verify(ctx)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestVerifyReportsMissingTables(t *testing.T) {
	manager := schema.New(newConnection(t), mocks.NewOtel())

	missing, err := manager.Verify(context.Background())

	require.NoError(t, err)
	assert.Equal(t, schema.Tables, missing)
}

func TestInitializeKeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	conn := newConnection(t)
	manager := schema.New(conn, mocks.NewOtel())

	require.NoError(t, manager.Initialize(ctx))

	db, err := conn.Handle(ctx)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO customers (customer_id, full_name, email) VALUES ('CUST1001', 'Ann Lee', 'ann@ex.com')`)
	require.NoError(t, err)

	require.NoError(t, manager.Initialize(ctx))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM customers"))
	assert.Equal(t, 1, count)
}

func TestInitializeClosedConnection(t *testing.T) {
	conn := newConnection(t)
	require.NoError(t, conn.Close())

	err := schema.New(conn, mocks.NewOtel()).Initialize(context.Background())

	assert.ErrorIs(t, err, database.ErrClosed)
}
