package coingecko

import (
	"net/http"
	"os"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	apiKey        string
	keyFromEnv    bool
	baseURL       string
	timeout       time.Duration
	maxRetries    int
	backoffFactor time.Duration
	retryStatuses []int
	userAgent     string
	httpClient    *http.Client
	lookupEnv     func(string) (string, bool)
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:       DefaultTimeout,
		maxRetries:    DefaultMaxRetries,
		backoffFactor: DefaultBackoffFactor,
		retryStatuses: DefaultRetryStatusCodes(),
		userAgent:     DefaultUserAgent,
		lookupEnv:     os.LookupEnv,
	}
}

// WithAPIKey sets the pro API key. An empty key is ignored.
func WithAPIKey(apiKey string) Option {
	return func(o *clientOptions) {
		o.apiKey = apiKey
	}
}

// WithAPIKeyFromEnv reads the key from COINGECKO_API_KEY when no explicit key
// was given through WithAPIKey.
func WithAPIKeyFromEnv() Option {
	return func(o *clientOptions) {
		o.keyFromEnv = true
	}
}

// WithBaseURL overrides the base URL chosen from the key.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithBackoffFactor sets the wait before the first retry. Each further retry
// doubles it.
func WithBackoffFactor(factor time.Duration) Option {
	return func(o *clientOptions) {
		if factor >= 0 {
			o.backoffFactor = factor
		}
	}
}

// WithRetryStatusCodes replaces the set of HTTP status codes that are retried.
func WithRetryStatusCodes(codes ...int) Option {
	return func(o *clientOptions) {
		o.retryStatuses = append([]int(nil), codes...)
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Its Timeout is overwritten only
// when it is zero.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
