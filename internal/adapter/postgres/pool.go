package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iciso/iciso-z6/internal/config"
	"github.com/iciso/iciso-z6/internal/domain"
)

// applicationName tags every session so intake traffic is visible in pg_stat_activity.
const applicationName = "iciso-intake"

// NewPool opens the pool backing the postgres record store. An unreachable
// database is reported as a domain.PersistenceError of kind Unavailable.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, domain.Unavailable("open record store", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, domain.Unavailable("open record store", err)
	}

	return pool, nil
}
