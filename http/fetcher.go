// Package http provides an HTTP-based implementation of klexicrawl.Fetcher.
// Both target wikis are static server-rendered MediaWiki sites, so a plain
// HTTP GET is sufficient.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/klexicrawl/klexicrawl"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to the wiki servers.
const DefaultUserAgent = "klexicrawl/1.0 (+https://github.com/klexicrawl/klexicrawl)"

// Ensure Fetcher implements klexicrawl.Fetcher at compile time.
var _ klexicrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML from URLs using HTTP requests.
// Errors carry application codes so callers can tell transient failures
// (retryable) from permanent ones.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the raw HTML at the given URL.
//
// Error codes: timeouts and connection errors map to EUNAVAILABLE, as do
// 5xx responses; 404 maps to ENOTFOUND; any other non-200 status maps to
// EINTERNAL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", klexicrawl.Errorf(klexicrawl.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &klexicrawl.Error{
			Code:    klexicrawl.EUNAVAILABLE,
			Message: "fetch " + url,
			Err:     err,
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", klexicrawl.Errorf(klexicrawl.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode >= 500:
		return "", klexicrawl.Errorf(klexicrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	default:
		return "", klexicrawl.Errorf(klexicrawl.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &klexicrawl.Error{
			Code:    klexicrawl.EUNAVAILABLE,
			Message: "read body of " + url,
			Err:     err,
		}
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
