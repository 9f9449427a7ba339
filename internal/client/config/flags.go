package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/userlist/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-e string    list endpoint URL
//	-tr string   transport: http or grpc
//	-g string    gRPC address
//	-t int       request timeout (seconds)
//	-i int       online check interval (seconds)
//	-id string   id generator: uuid, ulid or counter
//	-l string    log level
func parseFlags(cfg *Config) {
	parseFlagArgs(cfg, os.Args[1:])
}

func parseFlagArgs(cfg *Config, osArgs []string) {
	args := flagx.FilterArgs(osArgs, []string{"-e", "-tr", "-g", "-t", "-i", "-id", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Endpoint, "e", cfg.Endpoint, "users endpoint URL")
	fs.StringVar(&cfg.Transport, "tr", cfg.Transport, "transport: http or grpc")
	fs.StringVar(&cfg.GRPCAddr, "g", cfg.GRPCAddr, "gRPC server address")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.IDGenerator, "id", cfg.IDGenerator, "id generator: uuid, ulid, counter")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Durations from earlier layers may carry sub-second precision; only an
	// explicit flag replaces them.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
