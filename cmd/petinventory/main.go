package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pet-inventory/internal/adapters/storage"
	"pet-inventory/internal/config"
	"pet-inventory/internal/domain/pets"
	"pet-inventory/internal/platform/logger"
	"pet-inventory/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "petinventory",
		Short:         "Interactive pet inventory",
		Long:          "Asks for pets one by one on stdin, then lists them filtered by kind.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSession,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newListCmd())
	return root
}

// setup carga config y logger; los errores de config se reportan por stderr.
func setup(cmd *cobra.Command) (config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(logger.Options{Output: cmd.ErrOrStderr()})
		log.Error("invalid configuration", map[string]any{"error": err})
		return config.Config{}, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: cmd.ErrOrStderr(),
	})
	return cfg, log, nil
}

func runSession(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	repo, closeRepo, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		log.Error("failed to open store", map[string]any{"driver": cfg.Store.Driver, "error": err})
		return err
	}
	defer func() { _ = closeRepo() }()

	s := session.New(pets.NewService(repo), cmd.InOrStdin(), cmd.OutOrStdout(), log)
	if err := s.Run(ctx); err != nil {
		log.Error("session ended early", map[string]any{
			"session_id": s.ID(),
			"state":      s.State().String(),
			"error":      err,
		})
		return err
	}
	return nil
}
