package klexicrawl

import "context"

// LinkCollector discovers article URLs from a site's paginated listing
// pages.
type LinkCollector interface {
	// Collect walks listing pages starting at the profile's start URL,
	// following "next page" links, and returns article URLs in first-seen
	// order with duplicates removed. maxPages bounds the number of listing
	// pages fetched; maxPages <= 0 means no limit. A listing page that
	// cannot be fetched or parsed fails the whole collection.
	Collect(ctx context.Context, profile *SiteProfile, maxPages int) ([]string, error)
}
