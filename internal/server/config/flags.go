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
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-g string   gRPC bind address, empty disables gRPC
//	-s string   storage backend
//	-d string   SQL DSN
//	-m string   MongoDB URI
//	-n string   MongoDB database
//	-r string   Redis address
//	-p string   Redis password
//	-seed       seed default users at startup
//	-t int      shutdown timeout, seconds
//	-l string   log level
func parseFlags(config *Config) {
	parseFlagArgs(config, os.Args[1:])
}

func parseFlagArgs(config *Config, osArgs []string) {
	args := flagx.FilterArgs(osArgs,
		[]string{"-a", "-g", "-s", "-d", "-m", "-n", "-r", "-p", "-t", "-l"},
		"-seed")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port, empty disables gRPC")
	fs.StringVar(&config.StorageBackend, "s", config.StorageBackend, "storage backend: memory, postgres, sqlite, mongo, redis")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "MongoDB URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "MongoDB database name")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "Redis address")
	fs.StringVar(&config.RedisPassword, "p", config.RedisPassword, "Redis password")
	fs.BoolVar(&config.SeedOnStart, "seed", config.SeedOnStart, "seed default users at startup")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
