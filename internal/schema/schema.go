package schema

import (
	"context"
	"fmt"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel"
	"hoteladmin/migrations"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/dberr"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Tables lists every table in creation order. Tables referenced by a foreign
// key come before the tables that reference them.
var Tables = []string{
	"users",
	"customers",
	"staff",
	"user_sessions",
	"auth_logs",
	"reservations",
	"transactions",
	"room_occupancy",
}

type Manager struct {
	conn *database.Connection
	otel otel.Otel
}

func New(conn *database.Connection, otl otel.Otel) *Manager {
	return &Manager{
		conn: conn,
		otel: otl,
	}
}

// Initialize creates every missing table. It is safe to call on each start:
// existing tables are left alone and "already exists" errors are ignored.
// Any other failure rolls back and is returned.
func (m *Manager) Initialize(ctx context.Context) error {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelDatabaseScopeName, constant.OtelDatabaseScopeName+".schema.Initialize")
	defer scope.End()

	scripts, err := migrations.Up(m.conn.DriverName())
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to load schema: %w", err)
	}

	err = m.conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, script := range scripts {
			for _, stmt := range script.Statements() {
				if _, execErr := tx.ExecContext(ctx, stmt); execErr != nil {
					mapped := dberr.Map(execErr)
					if dberr.IsTableExists(mapped) {
						log.Debug().Str("script", script.Name).Msg("table already exists")

						continue
					}

					return fmt.Errorf("failed to apply %s: %w", script.Name, mapped)
				}
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize schema")
		scope.TraceError(err)

		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Info().Int("tables", len(scripts)).Str("driver", m.conn.DriverName()).Msg("Schema initialized")

	return nil
}

// Verify returns the tables from Tables that cannot be queried.
func (m *Manager) Verify(ctx context.Context) ([]string, error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelDatabaseScopeName, constant.OtelDatabaseScopeName+".schema.Verify")
	defer scope.End()

	db, err := m.conn.Handle(ctx)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}

	missing := []string{}

	for _, table := range Tables {
		rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT 1 FROM %s WHERE 1 = 0", table))
		if err != nil {
			log.Warn().Err(err).Str("table", table).Msg("table is not queryable")

			missing = append(missing, table)

			continue
		}

		if err := rows.Close(); err != nil {
			return nil, fmt.Errorf("failed to verify %s: %w", table, err)
		}
	}

	return missing, nil
}
