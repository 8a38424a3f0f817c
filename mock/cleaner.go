package mock

import "github.com/klexicrawl/klexicrawl"

var _ klexicrawl.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of klexicrawl.Cleaner.
type Cleaner struct {
	CleanFn func(rawHTML string, profile *klexicrawl.SiteProfile) (string, error)
}

func (c *Cleaner) Clean(rawHTML string, profile *klexicrawl.SiteProfile) (string, error) {
	return c.CleanFn(rawHTML, profile)
}
