package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/klexicrawl/klexicrawl"
	"golang.org/x/net/html"
)

// Ensure Segmenter implements klexicrawl.Segmenter at compile time.
var _ klexicrawl.Segmenter = (*Segmenter)(nil)

// Segmenter splits cleaned article HTML into paragraphs and sentences.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment extracts each <p> in document order, scoped to the profile's
// content selector when it matches. Paragraph strings are the element's
// inner HTML with inline tags kept verbatim; any nested unwanted sections
// that survived cleaning are dropped first. Sentences are built from the
// paragraph's plain text.
func (s *Segmenter) Segment(cleanedHTML string, profile *klexicrawl.SiteProfile) (*klexicrawl.Segments, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cleanedHTML))
	if err != nil {
		return nil, klexicrawl.Errorf(klexicrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Selection
	if profile != nil && profile.ContentSelector != "" {
		if scoped := doc.Find(profile.ContentSelector); scoped.Length() > 0 {
			root = scoped.First()
		}
	}

	segments := &klexicrawl.Segments{
		Paragraphs: []string{},
		Sentences:  []string{},
	}

	var serr error
	root.Find("p").Each(func(_ int, p *goquery.Selection) {
		if serr != nil {
			return
		}

		if profile != nil && profile.UnwantedSelector != "" {
			p.Find(profile.UnwantedSelector).Remove()
		}

		text := flattenText(p)
		if text == "" {
			return
		}

		inner, err := p.Html()
		if err != nil {
			serr = klexicrawl.Errorf(klexicrawl.EINTERNAL, "failed to serialize paragraph: %v", err)
			return
		}

		segments.Paragraphs = append(segments.Paragraphs, strings.TrimSpace(inner))
		segments.Sentences = append(segments.Sentences, klexicrawl.SplitSentences(text)...)
	})
	if serr != nil {
		return nil, serr
	}

	return segments, nil
}

// flattenText returns the selection's text content with each text node
// trimmed and joined by single spaces, so words separated only by inline
// tags do not run together.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if fields := strings.Fields(n.Data); len(fields) > 0 {
			*parts = append(*parts, strings.Join(fields, " "))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
