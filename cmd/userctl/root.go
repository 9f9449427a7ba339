package main

import (
	"github.com/dmitrijs2005/userlist/internal/server/config"
	"github.com/spf13/cobra"
)

// storageFlags mirror the server's storage settings. Flags that are not set
// keep the value from defaults, the environment and the config file.
type storageFlags struct {
	configFile    string
	backend       string
	dsn           string
	mongoURI      string
	mongoDatabase string
	redisAddr     string
	redisPassword string
}

func newRootCmd() *cobra.Command {
	var sf storageFlags

	root := &cobra.Command{
		Use:           "userctl",
		Short:         "Operator tool for the user listing service",
		Long:          "Seed storage, run schema migrations and print the HTTP API schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&sf.configFile, "config", "c", "", "Path to JSON config file")
	pf.StringVarP(&sf.backend, "backend", "s", "", "Storage backend: memory, postgres, sqlite, mongo, redis")
	pf.StringVarP(&sf.dsn, "dsn", "d", "", "SQL DSN")
	pf.StringVar(&sf.mongoURI, "mongo-uri", "", "MongoDB URI")
	pf.StringVar(&sf.mongoDatabase, "mongo-db", "", "MongoDB database")
	pf.StringVar(&sf.redisAddr, "redis-addr", "", "Redis address")
	pf.StringVar(&sf.redisPassword, "redis-password", "", "Redis password")

	root.AddCommand(newSeedCmd(&sf), newMigrateCmd(&sf), newSchemaCmd())
	return root
}

func (sf *storageFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadBase(sf.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("backend", &cfg.StorageBackend, sf.backend)
	override("dsn", &cfg.DatabaseDSN, sf.dsn)
	override("mongo-uri", &cfg.MongoURI, sf.mongoURI)
	override("mongo-db", &cfg.MongoDatabase, sf.mongoDatabase)
	override("redis-addr", &cfg.RedisAddr, sf.redisAddr)
	override("redis-password", &cfg.RedisPassword, sf.redisPassword)

	return cfg, nil
}
