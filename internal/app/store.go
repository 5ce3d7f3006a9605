package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iciso/iciso-z6/internal/adapter/filestore"
	"github.com/iciso/iciso-z6/internal/adapter/postgres"
	"github.com/iciso/iciso-z6/internal/adapter/postgres/application"
	"github.com/iciso/iciso-z6/internal/config"
	"github.com/iciso/iciso-z6/internal/domain"
)

// Store is the record store every backend provides.
type Store interface {
	Append(ctx context.Context, app domain.Application) error
	ReadAll(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Application, error)
	Ping(ctx context.Context) error
}

// OpenStore opens the backend selected by cfg.Storage.Driver. The returned
// close function releases it and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		store, err := filestore.New(cfg.Storage.Path, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info("record store ready", slog.String("driver", config.DriverFile), slog.String("path", store.Path()))
		return store, func() {}, nil

	case config.DriverPostgres:
		if cfg.Database.MigrateOnStart {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, log); err != nil {
				return nil, nil, fmt.Errorf("migrate database: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		log.Info("record store ready",
			slog.String("driver", config.DriverPostgres),
			slog.Int("max_conns", int(cfg.Database.MaxConns)),
		)
		return application.New(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
