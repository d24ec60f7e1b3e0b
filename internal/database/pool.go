package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/svsticky/alvreport/internal/config"
)

// Pool wraps a pgxpool.Pool with additional monitoring and lifecycle management.
type Pool struct {
	pool   *pgxpool.Pool
	config config.DatabaseConfig

	// Metrics
	totalQueries   atomic.Int64
	failedQueries  atomic.Int64
	totalLatencyNs atomic.Int64
}

// NewPool creates a new database connection pool with the given configuration.
// The pool is created lazily; use Connect to verify the database is reachable.
func NewPool(cfg config.DatabaseConfig) (*Pool, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("database name is required")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("database user is required")
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &Pool{
		pool:   pool,
		config: cfg,
	}, nil
}

// Connect verifies the database connection is working.
func (p *Pool) Connect(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close gracefully shuts down the connection pool.
func (p *Pool) Close() {
	p.pool.Close()
}

// Query executes a query and returns rows.
func (p *Pool) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := p.pool.Query(ctx, query, args...)
	p.recordQuery(time.Since(start), err)
	return rows, err
}

// QueryRow executes a query expected to return at most one row.
func (p *Pool) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	start := time.Now()
	row := p.pool.QueryRow(ctx, query, args...)
	p.recordQuery(time.Since(start), nil)
	return row
}

// recordQuery updates internal metrics.
func (p *Pool) recordQuery(duration time.Duration, err error) {
	p.totalQueries.Add(1)
	p.totalLatencyNs.Add(duration.Nanoseconds())
	if err != nil {
		p.failedQueries.Add(1)
	}
}

// Stats returns current pool and query statistics.
func (p *Pool) Stats() PoolStats {
	poolStats := p.pool.Stat()
	return PoolStats{
		TotalConns:    poolStats.TotalConns(),
		AcquiredConns: poolStats.AcquiredConns(),
		IdleConns:     poolStats.IdleConns(),
		TotalQueries:  p.totalQueries.Load(),
		FailedQueries: p.failedQueries.Load(),
		AvgLatency:    p.averageLatency(),
	}
}

func (p *Pool) averageLatency() time.Duration {
	total := p.totalQueries.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(p.totalLatencyNs.Load() / total)
}

// PoolStats contains connection pool and query statistics.
type PoolStats struct {
	// Connection pool stats
	TotalConns    int32
	AcquiredConns int32
	IdleConns     int32

	// Query stats
	TotalQueries  int64
	FailedQueries int64
	AvgLatency    time.Duration
}
