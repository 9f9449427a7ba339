package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("USERLISTING_ENDPOINT", "https://dummyjson.com/users")
	t.Setenv("USERLIST_TRANSPORT", "grpc")
	t.Setenv("USERLIST_GRPC_ADDR", "10.0.0.1:50051")
	t.Setenv("LOG_LEVEL", "debug")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://dummyjson.com/users", cfg.Endpoint)
	assert.Equal(t, "grpc", cfg.Transport)
	assert.Equal(t, "10.0.0.1:50051", cfg.GRPCAddr)
	assert.Equal(t, "uuid", cfg.IDGenerator)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("USERLIST_ID_GENERATOR"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".env"), []byte("USERLIST_ID_GENERATOR=counter\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("USERLIST_ID_GENERATOR") })

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "counter", cfg.IDGenerator)
}
