package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/arcscanner/itemsync/pkg/constants"
	"github.com/arcscanner/itemsync/pkg/errors"
	"github.com/arcscanner/itemsync/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication and
// retry/backoff. Rate-limit responses (403) and transient network failures
// are retried with exponential backoff; 404 is returned immediately as
// errors.ErrNotFound so callers can skip missing files.
type Client struct {
	http *http.Client
	auth Authenticator
}

// New creates a new transport client with the specified authenticator.
func New(auth Authenticator) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
		auth: auth,
	}
}

// Get performs a GET request with retries and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	log := logging.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt < constants.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, backoff(attempt)); err != nil {
				return nil, err
			}
		}

		body, retry, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}
		if !retry {
			return nil, err
		}

		lastErr = err
		log.Warn().
			Err(err).
			Str("url", url).
			Int("attempt", attempt+1).
			Msg("Request failed, retrying")
	}
	return nil, lastErr
}

// GetJSON performs a GET request and decodes the response body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.WrapParse("json", url, err)
	}
	return nil
}

// get performs a single GET attempt. The second return value reports whether
// the failure is retryable.
func (c *Client) get(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, errors.WrapResource("create", "request", "GET "+url, err)
	}

	c.auth.Apply(req)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, errors.ErrCanceled
		}
		return nil, true, errors.WrapAPI("github", 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, errors.NewAPIError("github", resp.StatusCode, "not found: "+url)
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		// GitHub signals rate limiting with 403
		return nil, true, errors.NewAPIError("github", resp.StatusCode, "rate limited: "+url)
	case resp.StatusCode >= 500:
		return nil, true, errors.NewAPIError("github", resp.StatusCode, "server error: "+url)
	default:
		return nil, false, errors.NewAPIError("github", resp.StatusCode, "unexpected status: "+url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errors.WrapIO("read", url, err)
	}
	return body, false, nil
}

// backoff returns the exponential backoff delay for the given attempt.
func backoff(attempt int) time.Duration {
	d := constants.RetryBackoff << (attempt - 1)
	if d > constants.MaxRetryBackoff {
		d = constants.MaxRetryBackoff
	}
	return d
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.ErrCanceled
	case <-timer.C:
		return nil
	}
}
