package klexicrawl

import "context"

// ArticleRecord is one exported unit of the dataset.
//
// The JSON keys match the published dataset format exactly. Paragraphs keep
// inline markup verbatim; Sentences are plain text.
type ArticleRecord struct {
	ID         int      `json:"ID"`
	WikiLink   string   `json:"WikiLink"`
	Paragraphs []string `json:"Paragraphs"`
	Sentences  []string `json:"Sentences"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ArticleRecord) Validate() error {
	if r.ID < 1 {
		return Errorf(EINVALID, "article ID must be positive")
	}
	if r.WikiLink == "" {
		return Errorf(EINVALID, "article wiki link required")
	}
	return nil
}

// BuildArticle assembles an ArticleRecord. Nil slices are normalized to
// empty so the record always serializes its arrays as [] rather than null.
func BuildArticle(id int, link string, paragraphs, sentences []string) (*ArticleRecord, error) {
	if paragraphs == nil {
		paragraphs = []string{}
	}
	if sentences == nil {
		sentences = []string{}
	}
	r := &ArticleRecord{
		ID:         id,
		WikiLink:   link,
		Paragraphs: paragraphs,
		Sentences:  sentences,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// DatasetWriter serializes an ordered list of records to storage.
type DatasetWriter interface {
	// WriteDataset writes all records in one shot, in slice order.
	WriteDataset(ctx context.Context, records []*ArticleRecord) error
}
