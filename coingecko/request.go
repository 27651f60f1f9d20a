package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxBackoff caps the wait between two attempts.
const maxBackoff = 120 * time.Second

// response is the outcome of the last attempt that produced an HTTP response.
type response struct {
	statusCode int
	status     string
	body       []byte
}

// newBackOff builds the exponential schedule for one call: the first retry
// waits BackoffFactor, every further retry doubles the wait.
func (p RetryPolicy) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BackoffFactor
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = maxBackoff
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.MaxRetries)), ctx)
}

// execute performs a GET request against requestURL, retrying transient
// failures, and decodes the JSON body.
func (c *Client) execute(ctx context.Context, requestURL string) (any, error) {
	logURL := c.redact(requestURL)

	var (
		last    *response
		attempt int
	)

	op := func() error {
		attempt++
		last = nil

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		c.logger.Debug().
			Str("url", logURL).
			Int("attempt", attempt).
			Msg("Making CoinGecko API request")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			var urlErr *url.Error
			if errors.As(err, &urlErr) {
				urlErr.URL = logURL
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		last = &response{
			statusCode: resp.StatusCode,
			status:     resp.Status,
			body:       body,
		}

		if c.retry.retryable(resp.StatusCode) {
			return &retryableStatusError{StatusCode: resp.StatusCode}
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn().
			Err(err).
			Str("url", logURL).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("CoinGecko request failed, retrying")
	}

	err := backoff.RetryNotify(op, c.retry.newBackOff(ctx), notify)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &NetworkError{URL: logURL, Err: ctxErr}
		}
		// A retryable status that survived every retry is reported like any
		// other non-2xx response.
		var statusErr *retryableStatusError
		if !errors.As(err, &statusErr) || last == nil {
			return nil, &NetworkError{URL: logURL, Err: err}
		}
	}

	return c.decode(logURL, last)
}

// decode turns the final response into a JSON value or a typed error.
func (c *Client) decode(logURL string, resp *response) (any, error) {
	var payload any
	jsonErr := json.Unmarshal(resp.body, &payload)

	if resp.statusCode < 200 || resp.statusCode > 299 {
		if jsonErr == nil {
			return nil, &APIError{StatusCode: resp.statusCode, Body: payload, Raw: resp.body}
		}
		return nil, &NetworkError{
			URL:        logURL,
			StatusCode: resp.statusCode,
			Err:        fmt.Errorf("unexpected response status %s", resp.status),
		}
	}

	if jsonErr != nil {
		return nil, &APIError{
			StatusCode: resp.statusCode,
			Raw:        resp.body,
			Err:        fmt.Errorf("failed to decode response: %w", jsonErr),
		}
	}

	return payload, nil
}
