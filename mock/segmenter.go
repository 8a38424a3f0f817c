package mock

import "github.com/klexicrawl/klexicrawl"

var _ klexicrawl.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of klexicrawl.Segmenter.
type Segmenter struct {
	SegmentFn func(cleanedHTML string, profile *klexicrawl.SiteProfile) (*klexicrawl.Segments, error)
}

func (s *Segmenter) Segment(cleanedHTML string, profile *klexicrawl.SiteProfile) (*klexicrawl.Segments, error) {
	return s.SegmentFn(cleanedHTML, profile)
}
