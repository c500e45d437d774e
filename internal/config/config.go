package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".partners"
	envPrefix  = "PARTNERS"

	KeyAPIBaseURL   = "api.base_url"
	KeyAPITimeout   = "api.timeout"
	KeyStoreBackend = "store.backend"
	KeyStorePath    = "store.path"

	DefaultAPIBaseURL = "http://localhost:8000"
	DefaultAPITimeout = 30 * time.Second
)

type Backend string

const (
	BackendChain  Backend = "chain"
	BackendFile   Backend = "file"
	BackendPass   Backend = "pass"
	BackendSQLite Backend = "sqlite"
)

func (b Backend) Valid() bool {
	switch b {
	case BackendChain, BackendFile, BackendPass, BackendSQLite:
		return true
	default:
		return false
	}
}

type Config struct {
	API   APIConfig
	Store StoreConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StoreConfig struct {
	Backend Backend
	// Path is the state directory. The sqlite backend keeps its database file inside it.
	Path string
}

// SQLitePath is the database file used by the sqlite backend.
func (s StoreConfig) SQLitePath() string {
	return filepath.Join(s.Path, "partners.db")
}

// Load resolves configuration from defaults, ~/.partners/config.toml (or path
// when set) and PARTNERS_* environment variables, in increasing precedence.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	v.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(KeyAPITimeout, DefaultAPITimeout)
	v.SetDefault(KeyStoreBackend, string(BackendChain))
	v.SetDefault(KeyStorePath, filepath.Join(homeDir, configDir, "state"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyAPIBaseURL, "PARTNERS_API_URL", "PARTNERS_API_BASE_URL"); err != nil {
		return Config{}, fmt.Errorf("bind api url env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		API: APIConfig{
			BaseURL: strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
			Timeout: v.GetDuration(KeyAPITimeout),
		},
		Store: StoreConfig{
			Backend: Backend(strings.ToLower(strings.TrimSpace(v.GetString(KeyStoreBackend)))),
			Path:    expandHome(strings.TrimSpace(v.GetString(KeyStorePath)), homeDir),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cfg.Store.Path, err = filepath.Abs(cfg.Store.Path)
	if err != nil {
		return Config{}, fmt.Errorf("resolve store path: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := ValidateBaseURL(c.API.BaseURL); err != nil {
		return err
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyAPITimeout)
	}
	if !c.Store.Backend.Valid() {
		return fmt.Errorf("unsupported %s %q", KeyStoreBackend, c.Store.Backend)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("%s is empty", KeyStorePath)
	}

	return nil
}

// ValidateBaseURL accepts absolute http(s) URLs only.
func ValidateBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", KeyAPIBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", KeyAPIBaseURL, raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s is missing a host", KeyAPIBaseURL)
	}

	return nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
