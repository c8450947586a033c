package config

// Config holds runtime settings for the ledger CLI.
//
// Fields:
//   - StorageDriver: which key/value substrate to open (sqlite, file, memory).
//   - StoragePath: database or data file location; ignored by memory.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	StorageDriver string `env:"LEDGER_STORAGE_DRIVER"`
	StoragePath   string `env:"LEDGER_STORAGE_PATH"`
	LogLevel      string `env:"LEDGER_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = "sqlite"
	c.StoragePath = "ledger.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags taken from args.
// Later sources take precedence over earlier ones.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
