package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-inventory/internal/adapters/api"
	"pet-inventory/internal/platform/httpclient"
)

func newListCmd() *cobra.Command {
	var kind, sessionID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets from a running inventory API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := cfg.RequireAPI(); err != nil {
				log.Error("invalid configuration", map[string]any{"api_url": cfg.APIURL, "error": err})
				return err
			}

			c, err := api.NewClient(cfg.APIURL, httpclient.DefaultTimeout)
			if err != nil {
				log.Error("invalid api url", map[string]any{"api_url": cfg.APIURL, "error": err})
				return err
			}

			items, err := c.ListPets(cmd.Context(), kind, sessionID)
			if err != nil {
				log.Error("list pets failed", map[string]any{"api_url": cfg.APIURL, "error": err})
				return err
			}

			for _, p := range items {
				fmt.Fprintln(cmd.OutOrStdout(), "* "+p.Summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Dog, Cat, Lizard, Bird or All (default All)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Only pets entered in this session")
	return cmd
}
