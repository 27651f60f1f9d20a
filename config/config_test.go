package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/geckoctl/coingecko"
)

// isolate runs the test in an empty directory with no inherited API key.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv(coingecko.EnvAPIKey, "")
	os.Unsetenv(coingecko.EnvAPIKey)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.CoinGecko.APIKey)
	assert.Empty(t, cfg.CoinGecko.BaseURL)
	assert.Equal(t, coingecko.DefaultTimeout, cfg.CoinGecko.Timeout)
	assert.Equal(t, coingecko.DefaultMaxRetries, cfg.CoinGecko.Retry.MaxRetries)
	assert.Equal(t, coingecko.DefaultBackoffFactor, cfg.CoinGecko.Retry.BackoffFactor)
	assert.Equal(t, []int{502, 503, 504}, cfg.CoinGecko.Retry.StatusCodes)
	assert.Equal(t, "usd", cfg.Markets.VsCurrency)
	assert.Equal(t, 100, cfg.Markets.PerPage)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "geckoctl.yaml")
	writeFile(t, path, `
coingecko:
  api_key: CG-file
  timeout: 30s
  retry:
    max_retries: 2
    backoff_factor: 250ms
    status_codes: [429, 503]
markets:
  vs_currency: eur
  per_page: 50
  default_filter: Rank <= 100
  presets:
    movers: abs(Change24h) > 10
logging:
  level: debug
  format: json
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "CG-file", cfg.CoinGecko.APIKey)
	assert.Equal(t, 30*time.Second, cfg.CoinGecko.Timeout)
	assert.Equal(t, 2, cfg.CoinGecko.Retry.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.CoinGecko.Retry.BackoffFactor)
	assert.Equal(t, []int{429, 503}, cfg.CoinGecko.Retry.StatusCodes)
	assert.Equal(t, "eur", cfg.Markets.VsCurrency)
	assert.Equal(t, 50, cfg.Markets.PerPage)
	assert.Equal(t, "Rank <= 100", cfg.Markets.DefaultFilter)
	assert.Equal(t, "abs(Change24h) > 10", cfg.Markets.Presets["movers"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Color)
}

func TestLoad_DiscoversConfigInWorkingDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), "markets:\n  vs_currency: jpy\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "jpy", cfg.Markets.VsCurrency)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)

	t.Setenv(coingecko.EnvAPIKey, "CG-env")
	t.Setenv("GECKOCTL_MARKETS_VS_CURRENCY", "gbp")
	t.Setenv("GECKOCTL_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "CG-env", cfg.CoinGecko.APIKey)
	assert.Equal(t, "gbp", cfg.Markets.VsCurrency)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "COINGECKO_API_KEY=CG-dotenv\n")
	t.Cleanup(func() { os.Unsetenv(coingecko.EnvAPIKey) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "CG-dotenv", cfg.CoinGecko.APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			CoinGecko: CoinGeckoConfig{
				Timeout: time.Minute,
				Retry: RetryConfig{
					MaxRetries:    5,
					BackoffFactor: time.Second,
					StatusCodes:   []int{502},
				},
			},
			Markets: MarketsConfig{VsCurrency: "usd", PerPage: 100},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:   "valid base URL",
			mutate: func(cfg *Config) { cfg.CoinGecko.BaseURL = "http://localhost:8080/api/v3/" },
		},
		{
			name:    "relative base URL",
			mutate:  func(cfg *Config) { cfg.CoinGecko.BaseURL = "api/v3" },
			wantErr: "coingecko.base_url",
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *Config) { cfg.CoinGecko.Timeout = 0 },
			wantErr: "coingecko.timeout",
		},
		{
			name:    "negative retries",
			mutate:  func(cfg *Config) { cfg.CoinGecko.Retry.MaxRetries = -1 },
			wantErr: "max_retries",
		},
		{
			name:    "negative backoff",
			mutate:  func(cfg *Config) { cfg.CoinGecko.Retry.BackoffFactor = -time.Second },
			wantErr: "backoff_factor",
		},
		{
			name:    "bad status code",
			mutate:  func(cfg *Config) { cfg.CoinGecko.Retry.StatusCodes = []int{42} },
			wantErr: "status_codes",
		},
		{
			name:    "missing vs currency",
			mutate:  func(cfg *Config) { cfg.Markets.VsCurrency = "" },
			wantErr: "markets.vs_currency",
		},
		{
			name:    "per page too large",
			mutate:  func(cfg *Config) { cfg.Markets.PerPage = 251 },
			wantErr: "markets.per_page",
		},
		{
			name:    "empty preset",
			mutate:  func(cfg *Config) { cfg.Markets.Presets = PresetConfig{"empty": " "} },
			wantErr: "markets.presets.empty",
		},
		{
			name:    "invalid level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "trace" },
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCoinGeckoConfig_ClientOptions(t *testing.T) {
	cfg := CoinGeckoConfig{
		APIKey:    "CG-key",
		BaseURL:   "http://localhost:9999/api/v3/",
		Timeout:   10 * time.Second,
		UserAgent: "custom",
		Retry: RetryConfig{
			MaxRetries:    1,
			BackoffFactor: time.Millisecond,
			StatusCodes:   []int{429},
		},
	}

	client, err := coingecko.NewClient(zerolog.Nop(), cfg.ClientOptions()...)
	require.NoError(t, err)

	assert.True(t, client.HasAPIKey())
	assert.Equal(t, "http://localhost:9999/api/v3/", client.BaseURL())
	assert.Equal(t, 10*time.Second, client.Timeout())
	assert.Equal(t, coingecko.RetryPolicy{
		MaxRetries:    1,
		BackoffFactor: time.Millisecond,
		StatusCodes:   []int{429},
	}, client.RetryPolicy())
}
