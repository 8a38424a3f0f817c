package mock

import (
	"context"

	"github.com/klexicrawl/klexicrawl"
)

var _ klexicrawl.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter is a mock implementation of klexicrawl.DatasetWriter.
type DatasetWriter struct {
	WriteDatasetFn func(ctx context.Context, records []*klexicrawl.ArticleRecord) error
}

func (w *DatasetWriter) WriteDataset(ctx context.Context, records []*klexicrawl.ArticleRecord) error {
	return w.WriteDatasetFn(ctx, records)
}
