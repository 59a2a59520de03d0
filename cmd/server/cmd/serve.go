package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"phonefix/internal/api"
	"phonefix/internal/config"
	"phonefix/internal/infrastructure/migration"
	"phonefix/internal/infrastructure/storage/postgres"
	"phonefix/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.MustLoad()
		log := logger.New(cfg.Env)

		if err := migration.NewMigration(cfg, migration.DefaultEngine).Up(); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		log.Info("migrations applied")

		storage, err := postgres.New(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer func() { _ = storage.Close() }()

		server := &http.Server{
			Addr:    cfg.Server.RunAddress,
			Handler: api.New(storage, log),
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server starting", "address", cfg.Server.RunAddress, "env", cfg.Env)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case sig := <-stop:
			log.Info("shutting down", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		log.Info("server stopped")
		return nil
	},
}
