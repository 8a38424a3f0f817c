package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/klexicrawl/klexicrawl"
)

// ExtractArticleLinks parses a listing page and returns article URLs in
// document order. Anchors must match the profile's article-link selector
// and carry an href starting with the profile's article path prefix;
// relative hrefs are resolved against the profile's base URL.
func ExtractArticleLinks(listingHTML string, profile *klexicrawl.SiteProfile) ([]string, error) {
	base, err := url.Parse(profile.BaseURL)
	if err != nil {
		return nil, klexicrawl.Errorf(klexicrawl.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingHTML))
	if err != nil {
		return nil, klexicrawl.Errorf(klexicrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	doc.Find(profile.ArticleLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if profile.ArticlePathPrefix != "" && !strings.HasPrefix(href, profile.ArticlePathPrefix) {
			return
		}
		if resolved := resolveURL(base, href); resolved != "" {
			links = append(links, resolved)
		}
	})
	return links, nil
}

// FindNextPage locates the pagination anchor by its exact (trimmed) text
// and returns its resolved URL. The bool result is false when the page has
// no next-page link.
func FindNextPage(listingHTML string, profile *klexicrawl.SiteProfile) (string, bool, error) {
	base, err := url.Parse(profile.BaseURL)
	if err != nil {
		return "", false, klexicrawl.Errorf(klexicrawl.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingHTML))
	if err != nil {
		return "", false, klexicrawl.Errorf(klexicrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	var next string
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.Text()) != profile.NextPageText {
			return true
		}
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return true
		}
		next = resolveURL(base, href)
		return next == ""
	})
	return next, next != "", nil
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
