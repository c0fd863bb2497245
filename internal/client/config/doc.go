// Package config loads runtime configuration for the TaskEase CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory (optional) and TASKEASE_* environment variables.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the TaskEase API (e.g. http://localhost:3000/api)
//	-b string   credential backend: sqlite, redis or memory
//	-s string   path of the SQLite credential store
//	-t int      per-request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3000/api",
//	  "credential_backend": "sqlite",
//	  "store_path": "taskease.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_file": ""
//	}
package config
