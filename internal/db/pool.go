package db

import (
	"database/sql"
	"fmt"
	"runtime"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PoolConfig struct {
	MaxOpen int
	MaxIdle int
}

var defaultPoolConfig = PoolConfig{
	MaxOpen: runtime.NumCPU() * 4,
	MaxIdle: runtime.NumCPU(),
}

// NewPool opens a tuned connection pool against Postgres.
func NewPool(dsn string, opts ...func(*PoolConfig)) (*sql.DB, error) {
	cfg := defaultPoolConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	pool, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pool.SetMaxOpenConns(cfg.MaxOpen)
	pool.SetMaxIdleConns(cfg.MaxIdle)
	pool.SetConnMaxIdleTime(5 * time.Minute)
	pool.SetConnMaxLifetime(time.Hour)

	if err := pool.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

func WithPoolSize(maxOpen, maxIdle int) func(*PoolConfig) {
	return func(cfg *PoolConfig) {
		cfg.MaxOpen = maxOpen
		cfg.MaxIdle = maxIdle
	}
}
