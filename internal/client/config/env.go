package config

import "github.com/dmitrijs2005/userlist/internal/envx"

// parseEnv overlays values from the environment and an optional .env file.
func parseEnv(cfg *Config) {
	if err := envx.Load(); err != nil {
		panic(err)
	}

	cfg.Endpoint = envx.String("USERLISTING_ENDPOINT", cfg.Endpoint)
	cfg.Transport = envx.String("USERLIST_TRANSPORT", cfg.Transport)
	cfg.GRPCAddr = envx.String("USERLIST_GRPC_ADDR", cfg.GRPCAddr)
	cfg.IDGenerator = envx.String("USERLIST_ID_GENERATOR", cfg.IDGenerator)
	cfg.LogLevel = envx.String("LOG_LEVEL", cfg.LogLevel)
}
