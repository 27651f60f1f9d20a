package coingecko

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name        string
		opts        []Option
		env         string
		wantBaseURL string
		wantKey     string
		wantErr     bool
	}{
		{
			name:        "no key uses public URL",
			wantBaseURL: PublicBaseURL,
		},
		{
			name:        "key uses pro URL",
			opts:        []Option{WithAPIKey("CG-secret")},
			wantBaseURL: ProBaseURL,
			wantKey:     "CG-secret",
		},
		{
			name:        "blank key is ignored",
			opts:        []Option{WithAPIKey("   ")},
			wantBaseURL: PublicBaseURL,
		},
		{
			name:        "env key ignored without option",
			env:         "CG-env",
			wantBaseURL: PublicBaseURL,
		},
		{
			name:        "env key used with option",
			opts:        []Option{WithAPIKeyFromEnv()},
			env:         "CG-env",
			wantBaseURL: ProBaseURL,
			wantKey:     "CG-env",
		},
		{
			name:        "explicit key wins over env",
			opts:        []Option{WithAPIKeyFromEnv(), WithAPIKey("CG-explicit")},
			env:         "CG-env",
			wantBaseURL: ProBaseURL,
			wantKey:     "CG-explicit",
		},
		{
			name:        "base URL override gets trailing slash",
			opts:        []Option{WithAPIKey("k"), WithBaseURL("http://localhost:8080/api/v3")},
			wantBaseURL: "http://localhost:8080/api/v3/",
			wantKey:     "k",
		},
		{
			name:    "relative base URL",
			opts:    []Option{WithBaseURL("api/v3/")},
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			opts:    []Option{WithBaseURL("ftp://example.com/")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIKey, tt.env)

			client, err := NewClient(logger, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBaseURL, client.BaseURL())
			assert.Equal(t, tt.wantKey, client.apiKey)
			assert.Equal(t, tt.wantKey != "", client.HasAPIKey())
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, DefaultTimeout, client.Timeout())
	assert.Equal(t, DefaultUserAgent, client.userAgent)

	policy := client.RetryPolicy()
	assert.Equal(t, DefaultMaxRetries, policy.MaxRetries)
	assert.Equal(t, DefaultBackoffFactor, policy.BackoffFactor)
	assert.ElementsMatch(t, []int{502, 503, 504}, policy.StatusCodes)
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.Timeout())
	})

	t.Run("non-positive timeout ignored", func(t *testing.T) {
		client, err := NewClient(logger, WithTimeout(0))
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, client.Timeout())
	})

	t.Run("with retry policy", func(t *testing.T) {
		client, err := NewClient(logger,
			WithMaxRetries(2),
			WithBackoffFactor(time.Second),
			WithRetryStatusCodes(429, 503),
		)
		require.NoError(t, err)

		policy := client.RetryPolicy()
		assert.Equal(t, 2, policy.MaxRetries)
		assert.Equal(t, time.Second, policy.BackoffFactor)
		assert.True(t, policy.retryable(429))
		assert.False(t, policy.retryable(502))
	})

	t.Run("retry policy copy is isolated", func(t *testing.T) {
		client, err := NewClient(logger)
		require.NoError(t, err)

		policy := client.RetryPolicy()
		policy.StatusCodes[0] = 418
		assert.False(t, client.RetryPolicy().retryable(418))
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("custom http client without timeout", func(t *testing.T) {
		customClient := &http.Client{}
		client, err := NewClient(logger, WithHTTPClient(customClient), WithTimeout(3*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, client.Timeout())
		assert.Zero(t, customClient.Timeout, "caller's client must not be modified")
	})
}

func TestClient_BuildURL(t *testing.T) {
	client, err := NewClient(zerolog.Nop(), WithAPIKey("CG-secret"))
	require.NoError(t, err)

	t.Run("key appended last", func(t *testing.T) {
		got := client.buildURL("coins/markets", NewParams().Set("vs_currency", "usd"), false)
		assert.Equal(t, ProBaseURL+"coins/markets?vs_currency=usd&x_cg_pro_api_key=CG-secret", got)
	})

	t.Run("key only", func(t *testing.T) {
		got := client.buildURL("ping", nil, false)
		assert.Equal(t, ProBaseURL+"ping?x_cg_pro_api_key=CG-secret", got)
	})

	t.Run("key after embedded query", func(t *testing.T) {
		got := client.buildURL("search?query=btc", nil, true)
		assert.Equal(t, ProBaseURL+"search?query=btc&x_cg_pro_api_key=CG-secret", got)
	})

	t.Run("caller key param replaced", func(t *testing.T) {
		params := NewParams().Set(APIKeyParam, "other").Set("page", 2)
		got := client.buildURL("coins", params, false)
		assert.Equal(t, ProBaseURL+"coins?page=2&x_cg_pro_api_key=CG-secret", got)

		v, _ := params.Get(APIKeyParam)
		assert.Equal(t, "other", v)
	})

	t.Run("redact", func(t *testing.T) {
		got := client.redact(client.buildURL("ping", nil, false))
		assert.NotContains(t, got, "CG-secret")
		assert.Contains(t, got, "x_cg_pro_api_key=REDACTED")
	})
}

func TestUnwrapData(t *testing.T) {
	data, err := unwrapData(map[string]any{"data": map[string]any{"active_cryptocurrencies": 10.0}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"active_cryptocurrencies": 10.0}, data)

	_, err = unwrapData(map[string]any{"status": "ok"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingData)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)

	_, err = unwrapData([]any{1.0})
	assert.ErrorIs(t, err, ErrMissingData)
}
