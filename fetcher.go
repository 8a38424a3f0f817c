package klexicrawl

import "context"

// Fetcher retrieves raw HTML from URLs.
// Both target sites are static, so implementations do not need to render
// JavaScript.
type Fetcher interface {
	// Fetch retrieves the raw HTML at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
