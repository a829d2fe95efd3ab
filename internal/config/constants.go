package config

import "time"

const (
	envPort           = "PORT"
	envDefaultLeague  = "DEFAULT_LEAGUE"
	envStorageBackend = "STORAGE_BACKEND"
	envDataDir        = "DATA_DIR"
	envRetryAttempts  = "STORAGE_RETRY_ATTEMPTS"
	envRetryBackoff   = "STORAGE_RETRY_BACKOFF"
	envSeedEnabled    = "SEED_ENABLED"
	envSeedSample     = "SEED_SAMPLE_CHARTS"
	envSeedFile       = "SEED_FILE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultLeague      = "NFL"
	defaultBackend     = BackendFS
	defaultDataDir     = "data"
	defaultRetries     = 3
	defaultBackoff     = 100 * Duration(time.Millisecond)
	defaultSeedEnabled = true
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "depth-chart-service"
)
