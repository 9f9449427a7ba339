package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userlist/internal/logging"
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/dmitrijs2005/userlist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userlist/internal/server/services"
	"github.com/spf13/cobra"
)

func newSeedCmd(sf *storageFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace stored users with the seed set",
		Long:  "Deletes every stored user and inserts the default seed users, or the users from --file (a JSON array).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sf.load(cmd)
			if err != nil {
				return err
			}

			var list []models.User
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(data, &list); err != nil {
					return fmt.Errorf("seed file %s: %w", file, err)
				}
			}

			ctx := cmd.Context()
			m, err := repomanager.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer m.Close(ctx)

			n, err := services.NewUserService(m.Users(), logging.Nop()).Seed(ctx, list)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users into %s\n", n, m.Backend())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with an array of users to seed")
	return cmd
}
