package config

// SeedConfig controls first-start data seeding.
type SeedConfig struct {
	Enabled      bool
	SampleCharts bool
	File         string
}

func loadSeed() SeedConfig {
	return SeedConfig{
		Enabled:      boolEnvOrDefault(envSeedEnabled, defaultSeedEnabled),
		SampleCharts: boolEnvOrDefault(envSeedSample, false),
		File:         envOrDefault(envSeedFile, ""),
	}
}
