// Package config loads daosignd's process configuration with
// github.com/spf13/viper, following a
// cobra.OnInitialize(initConfig) + viper.AutomaticEnv() pattern.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Backend selects which storage.Store implementation daosignd boots.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendBadger Backend = "badger"
)

// Config is daosignd's full runtime configuration.
type Config struct {
	StorageBackend Backend
	BadgerDir      string
	LogLevel       string
	MetricsAddr    string
}

// Load reads configuration from environment variables prefixed DAOSIGN_
// (e.g. DAOSIGN_STORAGE_BACKEND, DAOSIGN_BADGER_DIR), falling back to the
// defaults below.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("daosign")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage_backend", string(BackendMemory))
	v.SetDefault("badger_dir", "./data/daosign")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_addr", ":2112")

	return Config{
		StorageBackend: Backend(v.GetString("storage_backend")),
		BadgerDir:      v.GetString("badger_dir"),
		LogLevel:       v.GetString("log_level"),
		MetricsAddr:    v.GetString("metrics_addr"),
	}
}
