package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/retry"
	_ "github.com/jackc/pgx/v4/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" database/sql driver
)

const (
	// DriverSQLite is the file-backed default store
	DriverSQLite = "sqlite3"
	// DriverPostgres uses pgx through database/sql
	DriverPostgres = "pgx"
)

// ErrInvalidConfig marks settings that no amount of reconnecting can fix
var ErrInvalidConfig = errors.New("invalid database configuration")

// SQLClient owns the transaction store connection for the lifetime of the process
type SQLClient struct {
	db *sqlx.DB
}

// NewSQLClient opens and verifies a database connection for the configured driver
func NewSQLClient(config models.DatabaseConfig) (*SQLClient, error) {
	driver := config.Driver
	if driver == "" {
		driver = DriverSQLite
	}

	dsn, err := buildDSN(driver, config)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return &SQLClient{db: db}, nil
}

// ConnectRetryConfig is the startup retry policy for NewSQLClient. Invalid
// configuration fails on the first attempt.
func ConnectRetryConfig() retry.Config {
	config := retry.DefaultConfig()
	config.RetryableFunc = func(err error) bool {
		return !errors.Is(err, ErrInvalidConfig)
	}
	return config
}

func buildDSN(driver string, config models.DatabaseConfig) (string, error) {
	switch driver {
	case DriverSQLite:
		path := config.Path
		if path == "" {
			return "", fmt.Errorf("%w: DB_PATH is required for the %s driver", ErrInvalidConfig, driver)
		}
		// the database file is created on first run, its directory is not
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return "", fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return fmt.Sprintf("%s?_busy_timeout=5000", path), nil
	case DriverPostgres:
		if config.DSN == "" {
			return "", fmt.Errorf("%w: DB_DSN is required for the %s driver", ErrInvalidConfig, driver)
		}
		return config.DSN, nil
	default:
		return "", fmt.Errorf("%w: unsupported database driver %q", ErrInvalidConfig, driver)
	}
}

// GetDB returns the underlying connection pool
func (c *SQLClient) GetDB() *sqlx.DB {
	return c.db
}

// Ping verifies the connection is still usable
func (c *SQLClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the database connection pool
func (c *SQLClient) Close() error {
	return c.db.Close()
}
