package config

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port          string
	DefaultLeague string
	Storage       StorageConfig
	Seed          SeedConfig
	Logging       LoggingConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Invalid values fall back to defaults rather than failing startup.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		DefaultLeague: envOrDefault(envDefaultLeague, defaultLeague),
		Storage:       loadStorage(),
		Seed:          loadSeed(),
		Logging:       loadLogging(),
		Metrics:       loadMetrics(),
	}
}
