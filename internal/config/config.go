// Package config loads gallery settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// PathEnv names the variable consulted when no -config flag is given.
const PathEnv = "GALLERY_CONFIG"

type Config struct {
	Env          string        `yaml:"env" env:"GALLERY_ENV" env-default:"local"`
	CatalogPath  string        `yaml:"catalog_path" env:"GALLERY_CATALOG"`
	DownloadDir  string        `yaml:"download_dir" env:"GALLERY_DOWNLOAD_DIR"`
	LogFile      string        `yaml:"log_file" env:"GALLERY_LOG_FILE"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"GALLERY_FETCH_TIMEOUT" env-default:"30s"`
	DisableMouse bool          `yaml:"disable_mouse" env:"GALLERY_DISABLE_MOUSE"`
	Trace        TraceConfig   `yaml:"trace"`
}

type TraceConfig struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"photogallery"`
	TLS         bool   `yaml:"tls" env:"GALLERY_OTLP_TLS"`
}

// Load reads path (if non-empty) and then the environment, which wins.
// Unset directories fall back to per-user defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Path resolves the config file path from the flag value or PathEnv.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(PathEnv)
}

func (c *Config) applyDefaults() {
	if c.DownloadDir == "" {
		c.DownloadDir = DefaultDownloadDir()
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(os.TempDir(), "photogallery.log")
	}
}

// DefaultDownloadDir returns ~/Downloads, or the working directory when
// the home directory cannot be determined.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
