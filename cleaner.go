package klexicrawl

// Cleaner strips site-specific noise from raw article HTML.
type Cleaner interface {
	// Clean removes every subtree matching the profile's unwanted-section
	// selector, then truncates the document at the first match of the
	// profile's boundary selector (the match and everything after it is
	// discarded). Both steps are no-ops when the marker is absent.
	Clean(rawHTML string, profile *SiteProfile) (string, error)
}
