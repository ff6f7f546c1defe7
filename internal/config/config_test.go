package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "genia.db", cfg.DatabasePath)
	require.Equal(t, 120*time.Second, cfg.ProviderTimeout)
	require.Equal(t, ".", cfg.OutputDir)
	require.Equal(t, "français", cfg.Language)
	require.NotEmpty(t, cfg.ProviderEndpoint)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("GENIA_DB", "/tmp/other.db")
	t.Setenv("GENIA_API_KEY", "secret")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	require.Equal(t, "secret", cfg.ProviderAPIKey)
}

func TestParseJSON_OverlaysOnlyProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"provider_endpoint": "http://localhost:9090",
		"provider_timeout": "30s",
		"language": "english"
	}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"genia", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "http://localhost:9090", cfg.ProviderEndpoint)
	require.Equal(t, 30*time.Second, cfg.ProviderTimeout)
	require.Equal(t, "english", cfg.Language)
	// untouched fields keep their defaults
	require.Equal(t, "genia.db", cfg.DatabasePath)
}
