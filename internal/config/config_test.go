package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabase, cfg.Database)
	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LUNI_DATABASE", "/tmp/allkeys.txt")
	t.Setenv("LUNI_ADDRESS", "127.0.0.1:9000")
	t.Setenv("LUNI_LOG_LEVEL", "debug")
	t.Setenv("LUNI_CACHE_SIZE", "16")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/allkeys.txt", cfg.Database)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 16, cfg.CacheSize)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LUNI_DATABASE", "/from/env.txt")

	v := NewViper()
	v.Set(KeyDatabase, "/from/flag.txt")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.txt", cfg.Database)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "empty database", key: KeyDatabase, value: "  "},
		{name: "unknown log level", key: KeyLogLevel, value: "loud"},
		{name: "zero cache size", key: KeyCacheSize, value: 0},
		{name: "negative cache size", key: KeyCacheSize, value: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}
