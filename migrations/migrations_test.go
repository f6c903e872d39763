package migrations_test

import (
	"hoteladmin/migrations"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp(t *testing.T) {
	order := []string{"users", "customers", "staff", "user_sessions", "auth_logs", "reservations", "transactions", "room_occupancy"}

	for _, driver := range []string{"postgres", "mysql", "sqlite3"} {
		t.Run(driver, func(t *testing.T) {
			scripts, err := migrations.Up(driver)
			require.NoError(t, err)
			require.Len(t, scripts, len(order))

			for i, script := range scripts {
				assert.True(t, strings.HasSuffix(script.Name, "create_"+order[i]), script.Name)
				assert.Contains(t, script.SQL, "CREATE TABLE IF NOT EXISTS "+order[i]+" (")
			}
		})
	}
}

func TestUpUnknownDriver(t *testing.T) {
	_, err := migrations.Up("oracle")

	assert.Error(t, err)
}

func TestStatements(t *testing.T) {
	script := migrations.Script{SQL: "CREATE TABLE a (id INT);\n\nCREATE INDEX idx ON a (id);\n"}

	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE INDEX idx ON a (id)"}, script.Statements())
}
