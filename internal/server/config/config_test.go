package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
	assert.Equal(t, "", c.EndpointAddrGRPC)
	assert.Equal(t, BackendMemory, c.StorageBackend)
	assert.Equal(t, "mongodb://localhost:27017", c.MongoURI)
	assert.Equal(t, "userlist", c.MongoDatabase)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.False(t, c.SeedOnStart)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	for _, k := range envKeys {
		t.Setenv(k, "")
	}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "8080")

	path := writeTempJSON(t, "", "", map[string]any{
		"storage_backend": "sqlite",
		"database_dsn":    "file:users.db",
	})
	os.Args = []string{"testbin", "-c", path, "-s", "postgres"}

	c := LoadConfig()

	assert.Equal(t, "postgres", c.StorageBackend, "flag beats json and env")
	assert.Equal(t, "file:users.db", c.DatabaseDSN, "json beats default")
	assert.Equal(t, "debug", c.LogLevel, "env beats default")
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
}

var envKeys = []string{
	"PORT", "GRPC_ADDR", "STORAGE_BACKEND", "DATABASE_URL", "MONGO_URI",
	"MONGO_DB", "REDIS_ADDR", "REDIS_PASSWORD", "SEED_ON_START", "LOG_LEVEL",
}

func TestLoadBase(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	t.Setenv("STORAGE_BACKEND", "redis")

	path := writeTempJSON(t, "", "", map[string]any{"redis_addr": "cache:6380"})

	c, err := LoadBase(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", c.StorageBackend)
	assert.Equal(t, "cache:6380", c.RedisAddr)

	_, err = LoadBase(path + ".missing")
	assert.Error(t, err)
}
