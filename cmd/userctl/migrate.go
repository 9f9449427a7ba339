package main

import (
	"fmt"

	"github.com/dmitrijs2005/userlist/internal/common"
	"github.com/dmitrijs2005/userlist/internal/server/config"
	"github.com/dmitrijs2005/userlist/internal/server/repositories/repomanager"
	"github.com/spf13/cobra"
)

func newMigrateCmd(sf *storageFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations to the SQL backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sf.load(cmd)
			if err != nil {
				return err
			}

			if cfg.StorageBackend != config.BackendPostgres && cfg.StorageBackend != config.BackendSQLite {
				return fmt.Errorf("%q has no migrations: %w", cfg.StorageBackend, common.ErrorUnsupportedBackend)
			}

			ctx := cmd.Context()
			m, err := repomanager.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer m.Close(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied to %s\n", m.Backend())
			return nil
		},
	}
}
