package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/klexicrawl/klexicrawl"
	"github.com/klexicrawl/klexicrawl/bloom"
	"github.com/klexicrawl/klexicrawl/goquery"
)

// Visited-page tracking for pagination. Category listings are a few
// hundred pages at most, so the false positive rate can be kept tiny.
const (
	visitedExpectedPages     = 4096
	visitedFalsePositiveRate = 1e-6
)

// Ensure Collector implements klexicrawl.LinkCollector at compile time.
var _ klexicrawl.LinkCollector = (*Collector)(nil)

// Collector walks a site's paginated article listing and gathers article
// URLs. Listing-page failures are fatal: a broken listing means an
// incomplete dataset, so no partial result is returned.
type Collector struct {
	Fetcher klexicrawl.Fetcher
	Logger  *slog.Logger
}

// NewCollector creates a Collector using the given fetcher.
func NewCollector(fetcher klexicrawl.Fetcher, logger *slog.Logger) *Collector {
	return &Collector{Fetcher: fetcher, Logger: logger}
}

// Collect fetches listing pages starting at the profile's start URL and
// follows the profile's "next page" link. Article URLs are returned in
// first-seen order with duplicates removed. maxPages bounds the number of
// listing pages fetched; maxPages <= 0 means no limit. A next-page link
// pointing back at an already visited page ends pagination instead of
// looping.
func (c *Collector) Collect(ctx context.Context, profile *klexicrawl.SiteProfile, maxPages int) ([]string, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	logger := c.logger()

	visited := bloom.NewFilter(visitedExpectedPages, visitedFalsePositiveRate)
	seen := make(map[uint64]struct{})
	links := []string{}

	current := profile.StartURL
	pages := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := c.Fetcher.Fetch(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("fetch listing page %s: %w", current, err)
		}
		visited.Add(current)
		pages++

		pageLinks, err := goquery.ExtractArticleLinks(html, profile)
		if err != nil {
			return nil, fmt.Errorf("parse listing page %s: %w", current, err)
		}
		for _, link := range pageLinks {
			h := xxhash.Sum64String(link)
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			links = append(links, link)
		}

		logger.Debug("listing page collected",
			"url", current,
			"page", pages,
			"links", len(pageLinks),
			"total", len(links),
		)

		if maxPages > 0 && pages >= maxPages {
			break
		}

		next, ok, err := goquery.FindNextPage(html, profile)
		if err != nil {
			return nil, fmt.Errorf("parse listing page %s: %w", current, err)
		}
		if !ok {
			break
		}
		if visited.Test(next) {
			logger.Warn("pagination loop detected, stopping", "url", next)
			break
		}
		current = next
	}

	return links, nil
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
