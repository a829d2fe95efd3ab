package config

// LoggingConfig controls slog level and handler format.
type LoggingConfig struct {
	Level  string
	Format string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
