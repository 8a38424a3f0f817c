package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/klexicrawl/klexicrawl"
	"github.com/klexicrawl/klexicrawl/mock"
	klexislog "github.com/klexicrawl/klexicrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<p>ok</p>", nil
			},
			CloseFn: func() error { return nil },
		}

		f := klexislog.NewLoggingFetcher(next, logger)

		html, err := f.Fetch(context.Background(), "https://example.com/wiki/X")

		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", html)
		assert.Contains(t, buf.String(), "fetched")
		assert.Contains(t, buf.String(), "https://example.com/wiki/X")

		assert.NoError(t, f.Close())
	})

	t.Run("logs failure with error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", klexicrawl.Errorf(klexicrawl.EUNAVAILABLE, "connection reset")
			},
		}

		f := klexislog.NewLoggingFetcher(next, logger)

		_, err := f.Fetch(context.Background(), "https://example.com/wiki/X")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "fetch failed")
		assert.Contains(t, buf.String(), klexicrawl.EUNAVAILABLE)
	})
}
