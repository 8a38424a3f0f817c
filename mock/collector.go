package mock

import (
	"context"

	"github.com/klexicrawl/klexicrawl"
)

var _ klexicrawl.LinkCollector = (*LinkCollector)(nil)

// LinkCollector is a mock implementation of klexicrawl.LinkCollector.
type LinkCollector struct {
	CollectFn func(ctx context.Context, profile *klexicrawl.SiteProfile, maxPages int) ([]string, error)
}

func (c *LinkCollector) Collect(ctx context.Context, profile *klexicrawl.SiteProfile, maxPages int) ([]string, error) {
	return c.CollectFn(ctx, profile, maxPages)
}
