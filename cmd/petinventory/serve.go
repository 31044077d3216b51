package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"pet-inventory/internal/adapters/storage"
	"pet-inventory/internal/router"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the inventory over HTTP (read-only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := cfg.RequireServer(); err != nil {
				log.Error("invalid configuration", map[string]any{"port": cfg.Port, "error": err})
				return err
			}
			ctx := cmd.Context()

			repo, closeRepo, err := storage.Open(ctx, cfg.Store)
			if err != nil {
				log.Error("failed to open store", map[string]any{"driver": cfg.Store.Driver, "error": err})
				return err
			}
			defer func() { _ = closeRepo() }()

			srv := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      router.NewRouter(router.Options{Repo: repo}),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{"addr": srv.Addr, "store": cfg.Store.Driver})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Error("server error", map[string]any{"error": err})
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("graceful shutdown failed", map[string]any{"error": err})
				return err
			}
			return nil
		},
	}
}
