// Package config loads runtime configuration for the userlist CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: USERLISTING_ENDPOINT, USERLIST_TRANSPORT,
//     USERLIST_GRPC_ADDR, USERLIST_ID_GENERATOR, LOG_LEVEL. A .env file in
//     the working directory is read first.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Example JSON:
//
//	{
//	  "endpoint": "http://127.0.0.1:3000/users",
//	  "transport": "http",
//	  "grpc_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "id_generator": "uuid",
//	  "log_level": "warn"
//	}
package config
