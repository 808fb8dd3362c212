// Package config resolves luni settings from flags, environment and defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Configuration keys. Flags use the same names; environment variables use the
// LUNI_ prefix with dashes replaced by underscores (LUNI_LOG_LEVEL).
const (
	KeyDatabase  = "database"
	KeyAddress   = "address"
	KeyLogLevel  = "log-level"
	KeyCacheSize = "cache-size"

	EnvPrefix = "LUNI"
)

const (
	DefaultDatabase  = "/usr/share/unicode/allkeys.txt"
	DefaultAddress   = ":8080"
	DefaultLogLevel  = "info"
	DefaultCacheSize = 128
)

// Config holds resolved settings.
type Config struct {
	Database  string
	Address   string
	LogLevel  logrus.Level
	CacheSize int
}

// NewViper returns a viper instance with luni defaults and environment
// lookup configured.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDatabase, DefaultDatabase)
	v.SetDefault(KeyAddress, DefaultAddress)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyCacheSize, DefaultCacheSize)

	return v
}

// Load reads and validates settings from v.
func Load(v *viper.Viper) (*Config, error) {
	database := strings.TrimSpace(v.GetString(KeyDatabase))
	if database == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyDatabase)
	}

	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	cacheSize := v.GetInt(KeyCacheSize)
	if cacheSize <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", KeyCacheSize, cacheSize)
	}

	return &Config{
		Database:  database,
		Address:   v.GetString(KeyAddress),
		LogLevel:  level,
		CacheSize: cacheSize,
	}, nil
}
