// Package fetch resolves one feed URL to its raw body.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/prognar/PH-Tracker/internal/retry"
)

// Browser-like identity; Google News serves different markup to unknown agents.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Kind classifies a fetch failure.
type Kind string

const (
	KindTransport Kind = "transport"
	KindTimeout   Kind = "timeout"
	KindRedirect  Kind = "too_many_redirects"
)

// Error is the failure of a single source. Sources fail independently; the
// caller logs it and moves on.
type Error struct {
	URL  string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Config struct {
	Timeout       time.Duration
	MaxRedirects  int
	RatePerSec    float64
	Burst         int
	RetryAttempts int
	RetryDelay    time.Duration
}

// Client fetches feed bodies with a shared request-rate limiter so that
// concurrent source polls stay polite.
type Client struct {
	http     *http.Client
	limiter  *rate.Limiter
	timeout  time.Duration
	maxHops  int
	retryCfg retry.Config
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRedirects <= 0 {
		cfg.MaxRedirects = 5
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 4
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 4
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}

	return &Client{
		// Redirects are followed by hand so the hop count stays bounded.
		http: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
		timeout: cfg.Timeout,
		maxHops: cfg.MaxRedirects,
		retryCfg: retry.Config{
			MaxAttempts: cfg.RetryAttempts,
			Delay:       cfg.RetryDelay,
			Backoff:     true,
		},
	}
}

// Fetch resolves url to its raw body. One deadline covers the whole redirect
// chain and all retry attempts.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &Error{URL: url, Kind: KindTransport, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body string
	err := retry.Do(ctx, c.retryCfg, func() error {
		b, ferr := c.get(ctx, url, 0)
		if ferr != nil {
			return ferr
		}
		body = b
		return nil
	})
	if err != nil {
		return "", c.wrap(url, err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url string, hop int) (string, error) {
	if hop > c.maxHops {
		return "", &Error{URL: url, Kind: KindRedirect, Err: fmt.Errorf("more than %d redirects", c.maxHops)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		if loc := resp.Header.Get("Location"); loc != "" {
			next, perr := resp.Request.URL.Parse(loc)
			if perr != nil {
				return "", perr
			}
			io.Copy(io.Discard, resp.Body)
			return c.get(ctx, next.String(), hop+1)
		}
	}

	// Non-redirect statuses still yield the body; a lenient parser simply
	// finds no items in an error page.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// wrap turns whatever came out of the retry loop into a typed *Error.
func (c *Client) wrap(url string, err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{URL: url, Kind: KindTimeout, Err: err}
	}
	return &Error{URL: url, Kind: KindTransport, Err: err}
}
