package config

import "time"

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Config holds runtime settings for the userlist CLI.
type Config struct {
	Endpoint            string
	Transport           string
	GRPCAddr            string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	IDGenerator         string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = "http://127.0.0.1:3000/users"
	c.Transport = TransportHTTP
	c.GRPCAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.IDGenerator = "uuid"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config from defaults, then the environment (and
// .env), then JSON (if -c/-config is given), then command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
