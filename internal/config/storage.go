package config

import (
	"path/filepath"
	"strings"
	"time"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendFS     = "fs"
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// StorageConfig selects and tunes the snapshot backend.
type StorageConfig struct {
	Backend       string
	DataDir       string
	RetryAttempts int
	RetryBackoff  time.Duration
}

// BadgerDir is where the badger backend keeps its files.
func (c StorageConfig) BadgerDir() string {
	return filepath.Join(c.DataDir, "badger")
}

// SQLitePath is the sqlite backend's database file.
func (c StorageConfig) SQLitePath() string {
	return filepath.Join(c.DataDir, "depthcharts.db")
}

func loadStorage() StorageConfig {
	return StorageConfig{
		Backend:       normalizeBackend(envOrDefault(envStorageBackend, defaultBackend)),
		DataDir:       envOrDefault(envDataDir, defaultDataDir),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetries),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultBackoff),
	}
}

func normalizeBackend(raw string) string {
	switch b := strings.ToLower(strings.TrimSpace(raw)); b {
	case BackendFS, BackendMemory, BackendBadger, BackendSQLite:
		return b
	default:
		return defaultBackend
	}
}
