package config

import (
	"strings"

	"github.com/dmitrijs2005/userlist/internal/envx"
)

// parseEnv overlays values from the process environment. A .env file in the
// working directory is loaded first; variables already set take precedence
// over it. PORT may be a bare port number.
func parseEnv(config *Config) {
	if err := envx.Load(); err != nil {
		panic(err)
	}

	if port := envx.String("PORT", ""); port != "" {
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		config.EndpointAddrHTTP = port
	}

	config.EndpointAddrGRPC = envx.String("GRPC_ADDR", config.EndpointAddrGRPC)
	config.StorageBackend = envx.String("STORAGE_BACKEND", config.StorageBackend)
	config.DatabaseDSN = envx.String("DATABASE_URL", config.DatabaseDSN)
	config.MongoURI = envx.String("MONGO_URI", config.MongoURI)
	config.MongoDatabase = envx.String("MONGO_DB", config.MongoDatabase)
	config.RedisAddr = envx.String("REDIS_ADDR", config.RedisAddr)
	config.RedisPassword = envx.String("REDIS_PASSWORD", config.RedisPassword)
	config.SeedOnStart = envx.Bool("SEED_ON_START", config.SeedOnStart)
	config.LogLevel = envx.String("LOG_LEVEL", config.LogLevel)
}
