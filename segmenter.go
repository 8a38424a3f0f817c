package klexicrawl

// Segments holds the paragraph and sentence sequences of one article.
// Paragraphs keep inline markup verbatim; Sentences are plain text.
// Sentence order follows paragraph order.
type Segments struct {
	Paragraphs []string
	Sentences  []string
}

// Segmenter splits cleaned article HTML into paragraphs and sentences.
type Segmenter interface {
	// Segment extracts paragraphs in document order and fans each out
	// into sentences. Given identical input the output is byte-identical.
	Segment(cleanedHTML string, profile *SiteProfile) (*Segments, error)
}
