package klexicrawl

// SiteProfile captures one site's markup conventions: where the article
// listing starts, how pagination works, and which markers delimit the
// article content. Profiles are pure data; the two supported sites differ
// only in their values, not in behavior.
type SiteProfile struct {
	// Name identifies the profile (e.g., "klexikon").
	Name string

	// BaseURL is the scheme and host relative listing links resolve against.
	BaseURL string

	// StartURL is the first listing page of the crawl.
	StartURL string

	// ArticleLinkSelector matches article anchors on a listing page.
	ArticleLinkSelector string

	// ArticlePathPrefix filters listing anchors by href prefix.
	ArticlePathPrefix string

	// NextPageText is the exact anchor text of the pagination link.
	NextPageText string

	// UnwantedSelector matches subtrees stripped from article pages.
	UnwantedSelector string

	// BoundarySelector matches the marker at which article content is
	// truncated. The first match and everything after it is discarded.
	BoundarySelector string

	// ContentSelector scopes paragraph extraction to the main content area.
	ContentSelector string
}

// Validate returns an error if the profile contains invalid fields.
func (p *SiteProfile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if p.BaseURL == "" {
		return Errorf(EINVALID, "profile base URL required")
	}
	if p.StartURL == "" {
		return Errorf(EINVALID, "profile start URL required")
	}
	return nil
}

// Klexikon returns the profile for klexikon.zum.de.
// Article content ends at the centered input box inviting edits.
func Klexikon() *SiteProfile {
	return &SiteProfile{
		Name:                "klexikon",
		BaseURL:             "https://klexikon.zum.de",
		StartURL:            "https://klexikon.zum.de/wiki/Kategorie:Klexikon-Artikel",
		ArticleLinkSelector: "div.mw-category a",
		ArticlePathPrefix:   "/wiki/",
		NextPageText:        "nächste Seite",
		UnwantedSelector:    "div.klexibox",
		BoundarySelector:    "div.mw-inputbox-centered",
		ContentSelector:     "div.mw-parser-output",
	}
}

// MiniKlexikon returns the profile for miniklexikon.zum.de.
// Article content ends at the first horizontal rule.
func MiniKlexikon() *SiteProfile {
	return &SiteProfile{
		Name:                "miniklexikon",
		BaseURL:             "https://miniklexikon.zum.de",
		StartURL:            "https://miniklexikon.zum.de/wiki/Kategorie:Alle_Artikel",
		ArticleLinkSelector: "div.mw-category a",
		ArticlePathPrefix:   "/wiki/",
		NextPageText:        "nächste Seite",
		UnwantedSelector:    "div.klexibox",
		BoundarySelector:    "hr",
		ContentSelector:     "div.mw-parser-output",
	}
}

// Profiles returns all supported site profiles.
func Profiles() []*SiteProfile {
	return []*SiteProfile{Klexikon(), MiniKlexikon()}
}

// ProfileByName retrieves a profile by its name.
// Returns ENOTFOUND if no profile matches.
func ProfileByName(name string) (*SiteProfile, error) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "profile %q not found", name)
}
