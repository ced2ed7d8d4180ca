// Package app wires configuration, logging and the selected entity store
// into a ready endpoint handler.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jacentio/moviecast/api"
	"github.com/jacentio/moviecast/catalog"
	"github.com/jacentio/moviecast/internal/config"
	"github.com/jacentio/moviecast/internal/localstore"
	"github.com/jacentio/moviecast/store"
)

// NewLogger builds the process logger for cfg, writing to w.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// App holds the wired handler and the resources behind it.
type App struct {
	Handler *api.Handler
	closers []func() error
}

// Close releases the backend.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// New opens the backend selected by cfg and builds the endpoint handler.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{}
	backend, err := a.openStore(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	svc := catalog.NewService(backend, logger)
	a.Handler = api.NewHandler(svc, logger, api.Options{
		StrictNotFound: cfg.StrictNotFound,
		Timeout:        cfg.RequestTimeout,
	})
	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (catalog.Store, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		ls, err := localstore.Open(localstore.Options{
			Path:   cfg.LocalDBPath,
			Logger: logger,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, ls.Close)

		if cfg.FixturesPath != "" {
			if err := ls.LoadFixtures(ctx, cfg.FixturesPath); err != nil {
				return nil, err
			}
			logger.Info("loaded fixtures", "path", cfg.FixturesPath)
		}
		logger.Info("using local store", "path", cfg.LocalDBPath)
		return ls, nil

	case config.BackendDynamoDB:
		client, err := store.NewClient(ctx, store.ClientOptions{
			Region:   cfg.Region,
			Endpoint: cfg.Endpoint,
		})
		if err != nil {
			return nil, err
		}
		s := store.New(client, store.Config{
			MoviesTable: cfg.MoviesTable,
			CastTable:   cfg.CastTable,
			RoleIndex:   cfg.RoleIndex,
		})
		logger.Info("using dynamodb store",
			"region", cfg.Region,
			"moviesTable", cfg.MoviesTable,
			"castTable", cfg.CastTable,
			"roleIndex", cfg.RoleIndex,
		)
		return s, nil

	default:
		return nil, fmt.Errorf("app: unknown backend %q", cfg.Backend)
	}
}
