package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := readConfig(filepath.Join(t.TempDir(), "config.json5"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, defaultConfig, cfg)
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	err := os.WriteFile(path, []byte(`{
		lookup_timeout_seconds: 10,
		portal: {
			cloudflare_bypass: true,
			timeout_seconds: 20,
		},
	}`), 0600)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := readConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, 10, cfg.LookupTimeoutSeconds)
	require.True(t, cfg.Portal.CloudflareBypass)
	require.Equal(t, 20, cfg.Portal.TimeoutSeconds)
}
