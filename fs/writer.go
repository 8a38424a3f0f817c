// Package fs provides file-based export of the crawled dataset.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/klexicrawl/klexicrawl"
)

// Ensure Writer implements klexicrawl.DatasetWriter at compile time.
var _ klexicrawl.DatasetWriter = (*Writer)(nil)

// Writer writes the dataset as a single UTF-8 JSON array.
// The write is atomic: content goes to a temporary file first and is
// renamed into place, so a failed run never leaves a truncated dataset.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteDataset serializes the records in slice order.
// An empty dataset produces a valid empty JSON array. HTML escaping is
// disabled so inline tags kept in paragraph strings survive verbatim.
func (w *Writer) WriteDataset(ctx context.Context, records []*klexicrawl.ArticleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	if records == nil {
		records = []*klexicrawl.ArticleRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return klexicrawl.Errorf(klexicrawl.EINTERNAL, "encode dataset: %v", err)
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, w.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
