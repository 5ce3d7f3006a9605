package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/iciso/iciso-z6/internal/catalog"
	"github.com/iciso/iciso-z6/internal/config"
	"github.com/iciso/iciso-z6/internal/idgen"
	"github.com/iciso/iciso-z6/internal/metrics"
	"github.com/iciso/iciso-z6/internal/service/applications"
	"github.com/iciso/iciso-z6/internal/service/intake"
	"github.com/iciso/iciso-z6/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// record store, wires services and serves HTTP until ctx is canceled, then
// drains in-flight requests within the shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}
	defer closeStore()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		slog.Int("organizations", len(cat.Organizations())),
		slog.Int("themes", len(cat.Themes())),
	)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	submitLimit, closeLimit, err := newSubmitLimit(ctx, cfg.RateLimit, m, logger)
	if err != nil {
		return err
	}
	defer closeLimit()

	intakeSvc := intake.NewService(logger, store, idgen.New(),
		intake.WithCatalog(cat),
		intake.WithStrictEmail(cfg.Intake.StrictEmail),
	)
	appsSvc := applications.NewService(logger, store)

	deps := rest.RouterDeps{
		Applications: rest.NewApplicationHandler(intakeSvc, appsSvc, m, logger),
		Catalog:      rest.NewCatalogHandler(cat),
		Health:       rest.NewHealthHandler(store, cfg.Storage.Driver, BuildVersion()),
		Metrics:      m,
		MetricsPath:  cfg.Metrics.Path,
		SubmitLimit:  submitLimit,
		CORS:         cfg.CORS,
		TrustProxy:   cfg.Server.TrustProxy,
		Logger:       logger,
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           rest.NewRouter(deps),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, server, cfg.Server, logger)
}

// serve runs server until ctx is canceled or the listener fails.
func serve(ctx context.Context, server *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
