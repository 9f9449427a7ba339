package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userlist/internal/flagx"
	"github.com/dmitrijs2005/userlist/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer and
// zero-value fields that are absent from the file leave the current Config
// value untouched.
type JsonConfig struct {
	EndpointAddrHTTP string          `json:"endpoint_addr_http"`
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	StorageBackend   string          `json:"storage_backend"`
	DatabaseDSN      string          `json:"database_dsn"`
	MongoURI         string          `json:"mongo_uri"`
	MongoDatabase    string          `json:"mongo_database"`
	RedisAddr        string          `json:"redis_addr"`
	RedisPassword    *string         `json:"redis_password"`
	SeedOnStart      *bool           `json:"seed_on_start"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	LogLevel         string          `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Without the flag nothing is loaded. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {
	if err := loadJSONFile(config, flagx.JsonConfigFlags()); err != nil {
		panic(err)
	}
}

// loadJSONFile overlays the values present in the JSON file at path. An
// empty path is a no-op.
func loadJSONFile(config *Config, path string) error {
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MongoURI, c.MongoURI)
	setString(&config.MongoDatabase, c.MongoDatabase)
	setString(&config.RedisAddr, c.RedisAddr)
	if c.RedisPassword != nil {
		config.RedisPassword = *c.RedisPassword
	}
	if c.SeedOnStart != nil {
		config.SeedOnStart = *c.SeedOnStart
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
