package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
	} `envconfig:"SERVER"`

	App struct {
		Name              string `envconfig:"NAME"                default:"hoteladmin"`
		Timezone          string `envconfig:"TIMEZONE"`
		SessionTTLMinutes int    `envconfig:"SESSION_TTL_MINUTES" default:"480"`
		DefaultIPAddress  string `envconfig:"DEFAULT_IP_ADDRESS"  default:"127.0.0.1"`
	} `envconfig:"APP"`

	Cache struct {
		Enable bool `envconfig:"ENABLE"`
		Redis  struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Driver         string `envconfig:"DRIVER"          default:"postgres"`
		Host           string `envconfig:"HOST"`
		Port           string `envconfig:"PORT"`
		Username       string `envconfig:"USER"`
		Password       string `envconfig:"PASSWORD"`
		Name           string `envconfig:"NAME"`
		SSLMode        string `envconfig:"SSL_MODE"        default:"disable"`
		PoolSize       int    `envconfig:"POOL_SIZE"       default:"5"`
		MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
		RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
		ConnectTimeout int    `envconfig:"CONNECT_TIMEOUT" default:"5"`
		MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// Validate reports every required database variable that is missing.
// sqlite3 only needs DB_NAME, which is the database file path.
func (c *Config) Validate() error {
	missing := []string{}

	switch c.DB.Driver {
	case DriverPostgres, DriverMySQL:
		required := map[string]string{
			"DB_HOST":     c.DB.Host,
			"DB_PORT":     c.DB.Port,
			"DB_USER":     c.DB.Username,
			"DB_PASSWORD": c.DB.Password,
			"DB_NAME":     c.DB.Name,
		}

		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
			if required[key] == "" {
				missing = append(missing, key)
			}
		}
	case DriverSQLite:
		if c.DB.Name == "" {
			missing = append(missing, "DB_NAME")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}
