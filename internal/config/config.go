package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete skipselect configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Mock    MockConfig    `mapstructure:"mock" yaml:"mock"`
}

// CatalogConfig controls how skip offers are fetched
type CatalogConfig struct {
	// BaseURL is the catalog service root; offers are read from
	// {BaseURL}/skips/by-location
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// Postcode and Area select the location whose offers are shown
	Postcode string `mapstructure:"postcode" yaml:"postcode"`
	Area     string `mapstructure:"area" yaml:"area"`
	// TimeoutSeconds bounds a single catalog request (0 disables the timeout)
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	// UserAgent is sent with every request
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// Retry wraps the fetch in a retry policy when MaxAttempts > 1
	Retry RetryConfig `mapstructure:"retry" yaml:"retry"`
}

// RetryConfig controls catalog fetch retries
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first (default: 1, no retry)
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts"`
	// BackoffMs is the fixed delay between attempts in milliseconds
	BackoffMs int `mapstructure:"backoff_ms" yaml:"backoff_ms"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// ViewMode is the initial offer layout
	// Options: "card", "list"
	ViewMode string `mapstructure:"view_mode" yaml:"view_mode"`
	// AltScreen runs the UI in the terminal's alternate screen
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled turns file logging on (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum log level
	// Options: "debug", "info", "warn", "error"
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory holding skipselect.log; empty means {ConfigDir}/logs
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the size at which the log file is rotated
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// MockConfig controls the bundled mock catalog service
type MockConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:        "https://app.wewantwaste.co.uk/api",
			Postcode:       "NR32",
			Area:           "Lowestoft",
			TimeoutSeconds: 15,
			UserAgent:      "skipselect",
			Retry: RetryConfig{
				MaxAttempts: 1,
				BackoffMs:   500,
			},
		},
		TUI: TUIConfig{
			ViewMode:  "card",
			AltScreen: true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Mock: MockConfig{
			Host: "127.0.0.1",
			Port: 8089,
		},
	}
}

// Timeout returns the per-request timeout as a duration
func (c *CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Backoff returns the delay between retry attempts as a duration
func (c *RetryConfig) Backoff() time.Duration {
	return time.Duration(c.BackoffMs) * time.Millisecond
}

// ResolveDir returns the log directory, defaulting to {ConfigDir}/logs.
// A leading ~ expands to the user's home directory.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}

	path := l.Dir
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Catalog defaults
	viper.SetDefault("catalog.base_url", defaults.Catalog.BaseURL)
	viper.SetDefault("catalog.postcode", defaults.Catalog.Postcode)
	viper.SetDefault("catalog.area", defaults.Catalog.Area)
	viper.SetDefault("catalog.timeout_seconds", defaults.Catalog.TimeoutSeconds)
	viper.SetDefault("catalog.user_agent", defaults.Catalog.UserAgent)
	viper.SetDefault("catalog.retry.max_attempts", defaults.Catalog.Retry.MaxAttempts)
	viper.SetDefault("catalog.retry.backoff_ms", defaults.Catalog.Retry.BackoffMs)

	// TUI defaults
	viper.SetDefault("tui.view_mode", defaults.TUI.ViewMode)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	// Mock service defaults
	viper.SetDefault("mock.host", defaults.Mock.Host)
	viper.SetDefault("mock.port", defaults.Mock.Port)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if it
// cannot be loaded
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "skipselect")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skipselect"
	}
	return filepath.Join(home, ".config", "skipselect")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidViewModes returns the list of valid view mode values
func ValidViewModes() []string {
	return []string{"card", "list"}
}
