package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/migrations"
	"net"
	"net/url"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const migrationsTableParam = "x-migrations-table"

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (migrateLogger) Verbose() bool {
	return false
}

// DatabaseURL builds the golang-migrate URL for the configured driver.
func DatabaseURL(config *config.Config) (string, error) {
	switch config.DB.Driver {
	case "postgres":
		query := url.Values{}
		query.Set("sslmode", config.DB.SSLMode)
		query.Set(migrationsTableParam, config.DB.MigrationTable)

		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(config.DB.Username, config.DB.Password),
			Host:     net.JoinHostPort(config.DB.Host, config.DB.Port),
			Path:     config.DB.Name,
			RawQuery: query.Encode(),
		}

		return dsn.String(), nil
	case "mysql":
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = config.DB.Username
		mysqlCfg.Passwd = config.DB.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = net.JoinHostPort(config.DB.Host, config.DB.Port)
		mysqlCfg.DBName = config.DB.Name
		mysqlCfg.MultiStatements = true
		mysqlCfg.Params = map[string]string{migrationsTableParam: config.DB.MigrationTable}

		return "mysql://" + mysqlCfg.FormatDSN(), nil
	case "sqlite3":
		return fmt.Sprintf("sqlite3://%s?%s=%s", config.DB.Name, migrationsTableParam, config.DB.MigrationTable), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", config.DB.Driver)
	}
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, config.DB.Driver)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	databaseURL, err := DatabaseURL(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	mig.Log = migrateLogger{}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case "step-up":
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "drop":
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case "version":
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")

		return nil
	}

	return fmt.Errorf("unknown migration action %q", action)
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}

func Version(config *config.Config) error {
	return Runner(config, "version")
}
