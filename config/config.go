package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/geckoctl/coingecko"
)

// EnvPrefix prefixes every environment override, e.g. GECKOCTL_MARKETS_VS_CURRENCY.
const EnvPrefix = "GECKOCTL"

// maxPerPage is the largest page the markets endpoint serves.
const maxPerPage = 250

// Load loads the configuration from file, .env and environment.
// A missing config file is not an error unless configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".geckoctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/geckoctl/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv exports the variables of path into the process environment.
// Variables that are already set win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// CoinGecko defaults
	v.SetDefault("coingecko.base_url", "")
	v.SetDefault("coingecko.timeout", coingecko.DefaultTimeout)
	v.SetDefault("coingecko.user_agent", coingecko.DefaultUserAgent)
	v.SetDefault("coingecko.retry.max_retries", coingecko.DefaultMaxRetries)
	v.SetDefault("coingecko.retry.backoff_factor", coingecko.DefaultBackoffFactor)
	v.SetDefault("coingecko.retry.status_codes", coingecko.DefaultRetryStatusCodes())

	// Markets defaults
	v.SetDefault("markets.vs_currency", "usd")
	v.SetDefault("markets.per_page", 100)
	v.SetDefault("markets.default_filter", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps environment variables onto config keys. The API key is also
// read from the variable the CoinGecko tooling uses.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("coingecko.api_key", EnvPrefix+"_COINGECKO_API_KEY", coingecko.EnvAPIKey)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.CoinGecko.BaseURL != "" {
		u, err := url.Parse(cfg.CoinGecko.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("coingecko.base_url must be an absolute http(s) URL: %s", cfg.CoinGecko.BaseURL)
		}
	}

	if cfg.CoinGecko.Timeout <= 0 {
		return fmt.Errorf("coingecko.timeout must be positive")
	}

	retry := cfg.CoinGecko.Retry
	if retry.MaxRetries < 0 {
		return fmt.Errorf("coingecko.retry.max_retries must not be negative")
	}
	if retry.BackoffFactor < 0 {
		return fmt.Errorf("coingecko.retry.backoff_factor must not be negative")
	}
	for _, code := range retry.StatusCodes {
		if code < 100 || code > 599 {
			return fmt.Errorf("invalid coingecko.retry.status_codes entry: %d", code)
		}
	}

	if cfg.Markets.VsCurrency == "" {
		return fmt.Errorf("markets.vs_currency is required")
	}
	if cfg.Markets.PerPage < 1 || cfg.Markets.PerPage > maxPerPage {
		return fmt.Errorf("markets.per_page must be between 1 and %d", maxPerPage)
	}
	for name, expression := range cfg.Markets.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("markets.presets.%s has an empty expression", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ClientOptions translates the CoinGecko section into client options.
func (c CoinGeckoConfig) ClientOptions() []coingecko.Option {
	opts := []coingecko.Option{
		coingecko.WithAPIKey(c.APIKey),
		coingecko.WithTimeout(c.Timeout),
		coingecko.WithUserAgent(c.UserAgent),
		coingecko.WithMaxRetries(c.Retry.MaxRetries),
		coingecko.WithBackoffFactor(c.Retry.BackoffFactor),
	}
	if c.BaseURL != "" {
		opts = append(opts, coingecko.WithBaseURL(c.BaseURL))
	}
	if c.Retry.StatusCodes != nil {
		opts = append(opts, coingecko.WithRetryStatusCodes(c.Retry.StatusCodes...))
	}
	return opts
}
