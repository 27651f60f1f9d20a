package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// PublicBaseURL is used when the client has no API key.
	PublicBaseURL = "https://api.coingecko.com/api/v3/"
	// ProBaseURL is used when the client has an API key.
	ProBaseURL = "https://pro-api.coingecko.com/api/v3/"

	// EnvAPIKey names the environment variable read by WithAPIKeyFromEnv.
	EnvAPIKey = "COINGECKO_API_KEY"
	// APIKeyParam is the query parameter carrying the pro API key.
	APIKeyParam = "x_cg_pro_api_key"

	DefaultTimeout       = 120 * time.Second
	DefaultMaxRetries    = 5
	DefaultBackoffFactor = 500 * time.Millisecond
	DefaultUserAgent     = "geckoctl"
)

// DefaultRetryStatusCodes returns the status codes retried by default.
func DefaultRetryStatusCodes() []int {
	return []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout}
}

// RetryPolicy controls how transient failures are retried.
type RetryPolicy struct {
	MaxRetries    int
	BackoffFactor time.Duration
	StatusCodes   []int
}

func (p RetryPolicy) retryable(statusCode int) bool {
	for _, code := range p.StatusCodes {
		if code == statusCode {
			return true
		}
	}
	return false
}

// Client represents a CoinGecko API client.
// It is safe for concurrent use; nothing is modified after NewClient returns.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	retry      RetryPolicy
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new CoinGecko client
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	apiKey := strings.TrimSpace(o.apiKey)
	if apiKey == "" && o.keyFromEnv {
		if v, ok := o.lookupEnv(EnvAPIKey); ok {
			apiKey = strings.TrimSpace(v)
		}
	}

	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = PublicBaseURL
		if apiKey != "" {
			baseURL = ProBaseURL
		}
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base URL %q: %v", ErrInvalidConfig, baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be an absolute http(s) URL", ErrInvalidConfig, baseURL)
	}

	// Paths are appended to the base URL verbatim
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	} else if httpClient.Timeout == 0 {
		clone := *httpClient
		clone.Timeout = o.timeout
		httpClient = &clone
	}

	return &Client{
		apiKey:    apiKey,
		baseURL:   baseURL,
		userAgent: o.userAgent,
		retry: RetryPolicy{
			MaxRetries:    o.maxRetries,
			BackoffFactor: o.backoffFactor,
			StatusCodes:   append([]int(nil), o.retryStatuses...),
		},
		httpClient: httpClient,
		logger:     logger.With().Str("component", "coingecko").Logger(),
	}, nil
}

// BaseURL returns the base URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasAPIKey reports whether requests are authenticated.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// RetryPolicy returns a copy of the retry policy.
func (c *Client) RetryPolicy() RetryPolicy {
	p := c.retry
	p.StatusCodes = append([]int(nil), c.retry.StatusCodes...)
	return p
}

// buildURL builds the request URL for path, adding the API key parameter when
// the client has one.
func (c *Client) buildURL(path string, params *Params, pathHasQuery bool) string {
	p := params.Clone()
	if c.apiKey != "" {
		p.Del(APIKeyParam)
		p.Set(APIKeyParam, c.apiKey)
	}
	return BuildURL(c.baseURL, path, p, pathHasQuery)
}

// get normalizes params, builds the URL for path and executes the request.
func (c *Client) get(ctx context.Context, path string, params *Params) (any, error) {
	return c.execute(ctx, c.buildURL(path, params.normalized(), false))
}

// getWithQuery is get for paths that already embed a query string.
func (c *Client) getWithQuery(ctx context.Context, path string, params *Params) (any, error) {
	return c.execute(ctx, c.buildURL(path, params.normalized(), true))
}

// getData is get for endpoints wrapping their payload in a data envelope.
func (c *Client) getData(ctx context.Context, path string, params *Params) (any, error) {
	v, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	return unwrapData(v)
}

func unwrapData(v any) (any, error) {
	envelope, ok := v.(map[string]any)
	if !ok {
		return nil, &APIError{StatusCode: http.StatusOK, Body: v, Err: ErrMissingData}
	}
	data, ok := envelope["data"]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusOK, Body: v, Err: ErrMissingData}
	}
	return data, nil
}

// redact hides the API key in a URL meant for logs and errors.
func (c *Client) redact(u string) string {
	if c.apiKey == "" {
		return u
	}
	return strings.ReplaceAll(u, APIKeyParam+"="+c.apiKey, APIKeyParam+"=REDACTED")
}
