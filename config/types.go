package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	CoinGecko CoinGeckoConfig `mapstructure:"coingecko"`
	Markets   MarketsConfig   `mapstructure:"markets"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// CoinGeckoConfig holds API connection details
type CoinGeckoConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	Retry     RetryConfig   `mapstructure:"retry"`
}

// RetryConfig controls retries of transient failures
type RetryConfig struct {
	MaxRetries    int           `mapstructure:"max_retries"`
	BackoffFactor time.Duration `mapstructure:"backoff_factor"`
	StatusCodes   []int         `mapstructure:"status_codes"`
}

// MarketsConfig contains defaults for market listings
type MarketsConfig struct {
	VsCurrency    string       `mapstructure:"vs_currency"`
	PerPage       int          `mapstructure:"per_page"`
	DefaultFilter string       `mapstructure:"default_filter"`
	Presets       PresetConfig `mapstructure:"presets"`
}

// PresetConfig maps preset names to filter expressions
type PresetConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
