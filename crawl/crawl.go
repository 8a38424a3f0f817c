// Package crawl provides crawl orchestration: link collection, the
// per-article fetch/clean/segment pipeline, ordered record assembly, and
// dataset export.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/klexicrawl/klexicrawl"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of concurrent article fetches.
// Kept low to stay polite to the wiki servers.
const DefaultConcurrency = 2

// Crawler runs the full crawl for one site profile.
type Crawler struct {
	Collector   klexicrawl.LinkCollector
	Fetcher     klexicrawl.Fetcher
	Cleaner     klexicrawl.Cleaner
	Segmenter   klexicrawl.Segmenter
	Writer      klexicrawl.DatasetWriter
	RateLimiter klexicrawl.DomainLimiter // optional
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the outcome of a crawl.
type Result struct {
	// Collected is the number of article URLs discovered.
	Collected int
	// Saved is the number of records written to the dataset.
	Saved int
	// Skipped is the number of articles dropped after exhausting retries.
	Skipped int
	// Empty is the number of saved records with zero paragraphs.
	Empty int
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
// It is invoked from a single goroutine.
type ProgressFunc func(event ProgressEvent)

// articleResult holds the outcome of processing a single article URL.
type articleResult struct {
	position int
	url      string
	segments *klexicrawl.Segments
	err      error
}

// Run collects article links for the profile, processes every article
// through fetch, clean and segment, assembles records, and writes the
// dataset once at the end.
//
// A listing-page failure aborts the run with an error and nothing is
// written. A single article that still fails after the retry budget is
// logged and omitted; record IDs are assigned 1..N over the survivors in
// original URL order, never from completion order, so they stay contiguous.
// Articles that clean down to zero paragraphs are kept with empty arrays
// and logged.
func (c *Crawler) Run(ctx context.Context, profile *klexicrawl.SiteProfile, maxPages int, progress ProgressFunc) (*Result, error) {
	logger := c.logger()

	urls, err := c.Collector.Collect(ctx, profile, maxPages)
	if err != nil {
		return nil, fmt.Errorf("collect article links: %w", err)
	}
	total := len(urls)
	logger.Info("article links collected", "profile", profile.Name, "count", total)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan articleResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				resultCh <- c.processArticle(gctx, i, u, profile)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results into per-index slots.
	results := make([]articleResult, total)
	completed := 0
	for r := range resultCh {
		completed++
		results[r.position] = r

		if progress == nil {
			continue
		}
		typ := ProgressCompleted
		if r.err != nil {
			typ = ProgressFailed
		}
		progress(ProgressEvent{
			Type:      typ,
			Completed: completed,
			Total:     total,
			URL:       r.url,
			Error:     r.err,
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Assemble records in original URL order. IDs are assigned only now,
	// after the final ordering is fixed.
	records := make([]*klexicrawl.ArticleRecord, 0, total)
	res := &Result{Collected: total}
	for _, r := range results {
		if r.err != nil {
			res.Skipped++
			logger.Warn("article skipped", "url", r.url, "error", r.err)
			continue
		}
		if len(r.segments.Paragraphs) == 0 {
			res.Empty++
			logger.Warn("article produced no paragraphs", "url", r.url)
		}
		record, err := klexicrawl.BuildArticle(len(records)+1, r.url, r.segments.Paragraphs, r.segments.Sentences)
		if err != nil {
			res.Skipped++
			logger.Warn("article skipped", "url", r.url, "error", err)
			continue
		}
		records = append(records, record)
		res.Saved++
	}

	if err := c.Writer.WriteDataset(ctx, records); err != nil {
		return nil, fmt.Errorf("write dataset: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	logger.Info("crawl finished",
		"profile", profile.Name,
		"collected", res.Collected,
		"saved", res.Saved,
		"skipped", res.Skipped,
		"empty", res.Empty,
	)

	return res, nil
}

// processArticle runs the per-article pipeline: rate limit, fetch with
// retries, clean, segment.
func (c *Crawler) processArticle(ctx context.Context, position int, articleURL string, profile *klexicrawl.SiteProfile) articleResult {
	r := articleResult{position: position, url: articleURL}

	if c.RateLimiter != nil {
		u, err := url.Parse(articleURL)
		if err != nil {
			r.err = klexicrawl.Errorf(klexicrawl.EINVALID, "invalid article URL: %v", err)
			return r
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			r.err = err
			return r
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, articleURL, c.Fetcher.Fetch, c.Logger, delays)
	if err != nil {
		r.err = fmt.Errorf("fetch: %w", err)
		return r
	}

	cleaned, err := c.Cleaner.Clean(html, profile)
	if err != nil {
		r.err = fmt.Errorf("clean: %w", err)
		return r
	}

	segments, err := c.Segmenter.Segment(cleaned, profile)
	if err != nil {
		r.err = fmt.Errorf("segment: %w", err)
		return r
	}
	r.segments = segments

	return r
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
