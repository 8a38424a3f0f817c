// Package goquery implements HTML cleaning, segmentation, and listing-page
// parsing using CSS selectors on a structural parse tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/klexicrawl/klexicrawl"
)

// Ensure Cleaner implements klexicrawl.Cleaner at compile time.
var _ klexicrawl.Cleaner = (*Cleaner)(nil)

// Cleaner strips profile-specific noise from article HTML.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes every subtree matching the profile's unwanted-section
// selector, then truncates at the first boundary match: the matched node
// and all of its following siblings are discarded. Returns the body's
// inner HTML.
func (c *Cleaner) Clean(rawHTML string, profile *klexicrawl.SiteProfile) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", klexicrawl.Errorf(klexicrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	if profile.UnwantedSelector != "" {
		doc.Find(profile.UnwantedSelector).Remove()
	}

	if profile.BoundarySelector != "" {
		boundary := doc.Find(profile.BoundarySelector).First()
		if boundary.Length() > 0 {
			boundary.NextAll().Remove()
			boundary.Remove()
		}
	}

	html, err := doc.Find("body").Html()
	if err != nil {
		return "", klexicrawl.Errorf(klexicrawl.EINTERNAL, "failed to serialize HTML: %v", err)
	}
	return html, nil
}
