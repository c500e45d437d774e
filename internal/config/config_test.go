package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"PARTNERS_API_URL",
		"PARTNERS_API_BASE_URL",
		"PARTNERS_API_TIMEOUT",
		"PARTNERS_STORE_BACKEND",
		"PARTNERS_STORE_PATH",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	return home
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()

	dir := filepath.Join(home, ".partners")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	home := isolateEnv(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, BackendChain, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, ".partners", "state"), cfg.Store.Path)
	assert.Equal(t, filepath.Join(home, ".partners", "state", "partners.db"), cfg.Store.SQLitePath())
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := isolateEnv(t)
	writeConfig(t, home, `
[api]
base_url = "https://partners.example.com/v1"
timeout = "5s"

[store]
backend = "SQLite"
path = "~/custom-state"
`)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://partners.example.com/v1", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, "custom-state"), cfg.Store.Path)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := isolateEnv(t)
	writeConfig(t, home, `
[api]
base_url = "https://partners.example.com"

[store]
backend = "pass"
`)
	t.Setenv("PARTNERS_API_URL", "http://127.0.0.1:9000")
	t.Setenv("PARTNERS_STORE_BACKEND", "file")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.API.BaseURL)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
}

func TestLoadExplicitPath(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "partners.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\ntimeout = \"45s\"\n"), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.API.Timeout)

	_, err = Load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "read config file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "backend", body: "[store]\nbackend = \"redis\"\n", wantErr: "unsupported store.backend"},
		{name: "scheme", body: "[api]\nbase_url = \"ftp://partners\"\n", wantErr: "must use http or https"},
		{name: "host", body: "[api]\nbase_url = \"http://\"\n", wantErr: "missing a host"},
		{name: "timeout", body: "[api]\ntimeout = \"-1s\"\n", wantErr: "api.timeout must be positive"},
		{name: "syntax", body: "[api\n", wantErr: "read config file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			home := isolateEnv(t)
			writeConfig(t, home, tc.body)

			_, err := Load(viper.New(), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateBaseURL(t *testing.T) {
	require.NoError(t, ValidateBaseURL("http://localhost:8000"))
	require.NoError(t, ValidateBaseURL("https://partners.example.com/api"))
	require.Error(t, ValidateBaseURL("localhost:8000"))
	require.Error(t, ValidateBaseURL("://bad"))
}
