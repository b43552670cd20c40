package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/customer-search/internal/config"
	"github.com/aanand-mishra/customer-search/internal/http/handlers/page"
	"github.com/aanand-mishra/customer-search/internal/http/router"
	"github.com/aanand-mishra/customer-search/internal/render/htmlview"
	"github.com/aanand-mishra/customer-search/internal/storage"
	"github.com/aanand-mishra/customer-search/internal/storage/jsonfile"
	"github.com/aanand-mishra/customer-search/internal/storage/sqlite"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

// serve runs the server until SIGINT or SIGTERM, then drains in-flight
// requests for up to cfg.ShutdownTimeout.
func serve(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting customer-search",
		slog.String("env", cfg.Env),
		slog.String("version", Version))

	// ── Field registry ───────────────────────────────────────────────
	registry, err := loadRegistry(cfg)
	if err != nil {
		return fmt.Errorf("load field registry: %w", err)
	}

	// ── Record store ─────────────────────────────────────────────────
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStore()

	log.Info("storage initialised",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("records", cfg.Storage.RecordsPath))

	// ── Views and routes ─────────────────────────────────────────────
	view, err := htmlview.New(htmlview.WithEmptyIcon(cfg.UI.EmptyIcon))
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	handler := router.New(log, page.Deps{
		Store:    store,
		Registry: registry,
		View:     view,
		Title:    cfg.UI.Title,
		Subtitle: cfg.UI.Subtitle,
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}

// openStore builds the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				log.Error("failed to close database", slog.String("error", err.Error()))
			}
		}

		n, err := db.Count(ctx)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		if n == 0 {
			records, err := jsonfile.ReadFile(cfg.Storage.RecordsPath)
			if err != nil {
				closeDB()
				return nil, nil, err
			}
			seeded, err := db.Seed(ctx, records)
			if err != nil {
				closeDB()
				return nil, nil, err
			}
			log.Info("database seeded", slog.Int("customers", seeded), slog.String("path", cfg.Storage.SQLitePath))
		}
		return db, closeDB, nil

	default:
		store := jsonfile.New(cfg.Storage.RecordsPath, log)
		if cfg.Storage.Watch {
			if err := store.Watch(ctx); err != nil {
				return nil, nil, err
			}
		}
		return store, func() {}, nil
	}
}
