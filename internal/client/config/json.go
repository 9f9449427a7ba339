package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userlist/internal/flagx"
	"github.com/dmitrijs2005/userlist/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals may
// be strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	Endpoint            string          `json:"endpoint"`
	Transport           string          `json:"transport"`
	GRPCAddr            string          `json:"grpc_addr"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	IDGenerator         string          `json:"id_generator"`
	LogLevel            string          `json:"log_level"`
}

// parseJson overlays Config with values from the file named by -c or
// -config. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	if err := loadJSONFile(cfg, flagx.JsonConfigFlags()); err != nil {
		panic(err)
	}
}

func loadJSONFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	setString(&cfg.Endpoint, jc.Endpoint)
	setString(&cfg.Transport, jc.Transport)
	setString(&cfg.GRPCAddr, jc.GRPCAddr)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	setString(&cfg.IDGenerator, jc.IDGenerator)
	setString(&cfg.LogLevel, jc.LogLevel)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
