// Package config loads runtime configuration for the ledger CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with an optional .env file in
//     the working directory filling in unset ones.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   storage driver: sqlite, file or memory
//	-p string   storage path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "storage_driver": "sqlite",
//	  "storage_path": "ledger.db",
//	  "log_level": "warn"
//	}
//
// Environment
//
//	LEDGER_STORAGE_DRIVER, LEDGER_STORAGE_PATH, LEDGER_LOG_LEVEL
//
// Malformed JSON, environment values or flags panic.
package config
