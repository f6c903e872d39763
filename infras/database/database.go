package database

//go:generate go run go.uber.org/mock/mockgen -source=./database.go -destination=./mocks/database_mock.go -package=mocks

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/shared/dberr"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	sqliteMemory         = ":memory:"
	sqliteMaxConnections = 1
)

var ErrClosed = errors.New("database connection is closed")

// Transactor runs fn inside one database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// Connection owns the single pooled handle every repository borrows.
type Connection struct {
	mu sync.RWMutex
	db *sqlx.DB

	driver         string
	dsn            string
	label          string
	poolSize       int
	maxRetry       int
	retryWaitTime  time.Duration
	connectTimeout time.Duration
	closed         bool
}

// New builds a Connection from config and connects with bounded retry.
func New(cfg *config.Config) (*Connection, error) {
	conn, err := NewWithoutConnect(cfg)
	if err != nil {
		return nil, err
	}

	if err := conn.Connect(context.Background()); err != nil {
		return nil, err
	}

	return conn, nil
}

// NewWithoutConnect builds a Connection without opening it.
func NewWithoutConnect(cfg *config.Config) (*Connection, error) {
	dsn, label, err := descriptor(cfg)
	if err != nil {
		return nil, err
	}

	maxRetry := cfg.DB.MaxRetry
	if maxRetry < 1 {
		maxRetry = 1
	}

	return &Connection{
		driver:         cfg.DB.Driver,
		dsn:            dsn,
		label:          label,
		poolSize:       cfg.DB.PoolSize,
		maxRetry:       maxRetry,
		retryWaitTime:  time.Duration(cfg.DB.RetryWaitTime) * time.Second,
		connectTimeout: time.Duration(cfg.DB.ConnectTimeout) * time.Second,
	}, nil
}

func descriptor(cfg *config.Config) (dsn, label string, err error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		query := url.Values{}
		query.Set("sslmode", cfg.DB.SSLMode)

		if cfg.DB.ConnectTimeout > 0 {
			query.Set("connect_timeout", fmt.Sprint(cfg.DB.ConnectTimeout))
		}

		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.DB.Username, cfg.DB.Password),
			Host:     net.JoinHostPort(cfg.DB.Host, cfg.DB.Port),
			Path:     cfg.DB.Name,
			RawQuery: query.Encode(),
		}

		return dsn.String(), net.JoinHostPort(cfg.DB.Host, cfg.DB.Port) + "/" + cfg.DB.Name, nil
	case config.DriverMySQL:
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = cfg.DB.Username
		mysqlCfg.Passwd = cfg.DB.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = net.JoinHostPort(cfg.DB.Host, cfg.DB.Port)
		mysqlCfg.DBName = cfg.DB.Name
		mysqlCfg.ParseTime = true
		mysqlCfg.ClientFoundRows = true
		mysqlCfg.Loc = time.UTC
		mysqlCfg.Timeout = time.Duration(cfg.DB.ConnectTimeout) * time.Second
		mysqlCfg.Params = map[string]string{"charset": "utf8mb4"}

		return mysqlCfg.FormatDSN(), mysqlCfg.Addr + "/" + cfg.DB.Name, nil
	case config.DriverSQLite:
		if cfg.DB.Name == sqliteMemory {
			return "file::memory:?_foreign_keys=on", sqliteMemory, nil
		}

		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.DB.Name), cfg.DB.Name, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

// Connect opens the handle, trying up to DB_MAX_RETRY times with
// DB_RETRY_WAIT_TIME between attempts. Exhaustion returns the last error.
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return nil
	}

	var lastErr error

	for retry := range c.maxRetry {
		db, err := c.open(ctx)
		if err == nil {
			c.db = db
			c.closed = false

			log.
				Info().
				Str("driver", c.driver).
				Str("target", c.label).
				Msg("Connected to database")

			return nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("driver", c.driver).
			Str("target", c.label).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry < c.maxRetry-1 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("connect to database: %w", ctx.Err())
			case <-time.After(c.retryWaitTime):
			}
		}
	}

	return &dberr.Error{
		Sentinel: dberr.ErrConnection,
		Cause:    fmt.Errorf("giving up after %d attempts: %w", c.maxRetry, lastErr),
	}
}

func (c *Connection) open(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.Open(c.driver, c.dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.driver, err)
	}

	if c.driver == config.DriverSQLite {
		db.SetMaxOpenConns(sqliteMaxConnections)
	} else if c.poolSize > 0 {
		db.SetMaxOpenConns(c.poolSize)
		db.SetMaxIdleConns(c.poolSize)
	}

	pingCtx := ctx
	if c.connectTimeout > 0 {
		var cancel context.CancelFunc

		pingCtx, cancel = context.WithTimeout(ctx, c.connectTimeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping %s: %w", c.driver, err)
	}

	return db, nil
}

// IsConnected reports whether the handle is open and answers a ping.
func (c *Connection) IsConnected(ctx context.Context) bool {
	c.mu.RLock()
	db := c.db
	c.mu.RUnlock()

	if db == nil {
		return false
	}

	return db.PingContext(ctx) == nil
}

// Handle returns a live handle. A failed ping triggers one reconnect attempt
// before the error is returned to the caller.
func (c *Connection) Handle(ctx context.Context) (*sqlx.DB, error) {
	c.mu.RLock()
	db, closed := c.db, c.closed
	c.mu.RUnlock()

	if closed {
		return nil, ErrClosed
	}

	if db != nil && db.PingContext(ctx) == nil {
		return db, nil
	}

	log.Warn().Str("driver", c.driver).Msg("Database connection lost, reconnecting")

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	if c.db != nil && c.db != db {
		return c.db, nil
	}

	if c.db != nil {
		_ = c.db.Close()
		c.db = nil
	}

	fresh, err := c.open(ctx)
	if err != nil {
		return nil, &dberr.Error{Sentinel: dberr.ErrConnection, Cause: err}
	}

	c.db = fresh

	return fresh, nil
}

// DriverName returns the configured driver, one of config.Driver*.
func (c *Connection) DriverName() string {
	return c.driver
}

// WithTx commits when fn returns nil and rolls back on error or panic.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	db, err := c.Handle(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", dberr.Map(err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}

			return
		}

		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit transaction: %w", dberr.Map(err))
		}
	}()

	return fn(tx)
}

// Close releases the handle. Calling it again is a no-op.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	if c.db == nil {
		return nil
	}

	db := c.db
	c.db = nil

	if err := db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	log.Info().Str("driver", c.driver).Msg("Database connection closed")

	return nil
}
