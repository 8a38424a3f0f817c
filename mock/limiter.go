package mock

import (
	"context"

	"github.com/klexicrawl/klexicrawl"
)

var _ klexicrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of klexicrawl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
