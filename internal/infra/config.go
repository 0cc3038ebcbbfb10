package infra

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"coin_tracker/internal/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is where the bootstrap looks for the config file
	DefaultConfigPath = "configs/config.yaml"

	envPrefix = "COIN_TRACKER_"
)

// Config는 애플리케이션의 모든 설정을 담습니다.
// LoadConfig로 로드된 후에 환경 변수를 통해 값을 덮어씁니다.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"api"`

	UI struct {
		WindowWidth  int `yaml:"window_width"`
		WindowHeight int `yaml:"window_height"`
	} `yaml:"ui"`

	Icons struct {
		Enabled     bool    `yaml:"enabled"`
		Dir         string  `yaml:"dir"`
		Size        int     `yaml:"size"`
		Concurrency int     `yaml:"concurrency"`
		RatePerSec  float64 `yaml:"rate_per_sec"`
	} `yaml:"icons"`

	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	var cfg Config
	cfg.App.Name = "Coin Tracker"
	cfg.App.Version = "dev"
	cfg.API.BaseURL = DefaultMarketsBaseURL
	cfg.API.TimeoutSec = 10
	cfg.UI.WindowWidth = 1000
	cfg.UI.WindowHeight = 700
	cfg.Icons.Enabled = true
	cfg.Icons.Size = 24
	cfg.Icons.Concurrency = 5
	cfg.Icons.RatePerSec = 5
	cfg.Logging.Level = "info"
	cfg.Logging.Dir = "logs"
	return &cfg
}

// LoadConfig는 설정 파일을 읽고 파싱합니다.
// A missing file falls back to DefaultConfig; a .env file in the working
// directory is loaded before environment overrides are applied.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", slog.Any("error", err))
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Warn("Config file not found, using defaults", slog.String("path", path))
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// 환경 변수 오버라이드 지원
	overrideWithEnv(cfg)

	// 설정 유효성 검사
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if !hasPrefix(c.API.BaseURL, "http://") && !hasPrefix(c.API.BaseURL, "https://") {
		return &domain.ConfigError{Field: "api.base_url", Err: fmt.Errorf("invalid URL: %q", c.API.BaseURL)}
	}
	if c.API.TimeoutSec <= 0 {
		return &domain.ConfigError{Field: "api.timeout_sec", Err: fmt.Errorf("must be positive")}
	}
	if c.Icons.Enabled {
		if c.Icons.Size <= 0 {
			return &domain.ConfigError{Field: "icons.size", Err: fmt.Errorf("must be positive")}
		}
		if c.Icons.Concurrency <= 0 {
			return &domain.ConfigError{Field: "icons.concurrency", Err: fmt.Errorf("must be positive")}
		}
		if c.Icons.RatePerSec <= 0 {
			return &domain.ConfigError{Field: "icons.rate_per_sec", Err: fmt.Errorf("must be positive")}
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return &domain.ConfigError{Field: "logging.level", Err: fmt.Errorf("unknown level %q", c.Logging.Level)}
	}

	return nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[0:len(prefix)] == prefix
}

// overrideWithEnv는 환경 변수가 존재할 경우 설정 값을 덮어씁니다.
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv(envPrefix + "API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(envPrefix + "DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(envPrefix + "ICONS_DIR"); v != "" {
		cfg.Icons.Dir = v
	}
	if v := os.Getenv(envPrefix + "ICONS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Icons.Enabled = enabled
		}
	}
}
