package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GUESTLIST_STORE", "")
	t.Setenv("GUESTLIST_DUMP_FORMAT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_PRETTY", "")

	cfg := LoadConfig()
	require.Equal(t, "memory", cfg.Store)
	require.Equal(t, "text", cfg.DumpFormat)
	require.Equal(t, "warn", cfg.LogLevel)
	require.False(t, cfg.LogPretty)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("GUESTLIST_STORE", "sqlite")
	t.Setenv("GUESTLIST_DUMP_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")

	cfg := LoadConfig()
	require.Equal(t, "sqlite", cfg.Store)
	require.Equal(t, "json", cfg.DumpFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.LogPretty)
}

func TestGetEnvBool_InvalidFallsBack(t *testing.T) {
	t.Setenv("LOG_PRETTY", "maybe")
	require.True(t, getEnvBool("LOG_PRETTY", true))
}
