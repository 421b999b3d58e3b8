package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"workbook_service/pkg/retry"
)

type Config struct {
	URL            string
	MaxConn        int32
	MinConn        int32
	ConnectRetries int
	ConnectBackoff time.Duration
}

// NewPool opens a pgx pool and pings it, retrying while the database is not
// reachable yet.
func NewPool(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres url: %w", err)
	}
	if cfg.MaxConn > 0 {
		poolCfg.MaxConns = cfg.MaxConn
	}
	if cfg.MinConn > 0 {
		poolCfg.MinConns = cfg.MinConn
	}

	retries := cfg.ConnectRetries
	if retries <= 0 {
		retries = 1
	}

	return retry.WithBackoff(ctx, retries, cfg.ConnectBackoff, retry.Always, func() (*pgxpool.Pool, error) {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create pool: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping db: %w", err)
		}
		return pool, nil
	})
}

// Migrate applies every pending migration from sourceURL.
func Migrate(url, sourceURL string) error {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}
	defer conn.Close()

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to init migration: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
