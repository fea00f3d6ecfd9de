package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/internal/app"
	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/pkg/database"
	"github.com/d60-Lab/yatube/pkg/logger"
	"github.com/d60-Lab/yatube/pkg/monitor"
	"github.com/d60-Lab/yatube/pkg/tracing"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			autoMigrate, _ := cmd.Flags().GetBool("migrate")

			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer func() { _ = database.Close(db) }()

			if err := cfg.Validate(); err != nil {
				return err
			}

			if autoMigrate {
				if err := model.AutoMigrate(db); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
			if err != nil {
				return err
			}
			sentryOn, err := monitor.Init(cfg.Sentry)
			if err != nil {
				logger.Warn("sentry init failed", zap.Error(err))
			}
			if sentryOn {
				defer monitor.Flush(cfg.Server.ShutdownTimeout)
			}

			pages, closeCache := cache.New(cfg.Redis)
			defer func() { _ = closeCache() }()

			engine, _, err := app.NewEngine(cfg, db, pages, sentryOn)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      engine,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}
			errCh := make(chan error, 1)
			go func() {
				logger.Info("http server listening", zap.String("addr", cfg.Server.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("http shutdown", zap.Error(err))
			}
			if err := shutdownTracing(shutdownCtx); err != nil {
				logger.Warn("tracing shutdown", zap.Error(err))
			}
			return nil
		},
	}
	cmd.Flags().Bool("migrate", true, "run schema migration before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer func() { _ = database.Close(db) }()

			if err := model.AutoMigrate(db); err != nil {
				return err
			}
			logger.Info("schema migrated", zap.Int("models", len(model.All())))
			return nil
		},
	}
}
