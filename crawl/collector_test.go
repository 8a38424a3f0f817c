package crawl_test

import (
	"context"
	"testing"

	"github.com/klexicrawl/klexicrawl"
	"github.com/klexicrawl/klexicrawl/crawl"
	"github.com/klexicrawl/klexicrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *klexicrawl.SiteProfile {
	return &klexicrawl.SiteProfile{
		Name:                "test",
		BaseURL:             "https://wiki.test",
		StartURL:            "https://wiki.test/wiki/Kategorie:Artikel",
		ArticleLinkSelector: "div.mw-category a",
		ArticlePathPrefix:   "/wiki/",
		NextPageText:        "nächste Seite",
		UnwantedSelector:    "div.klexibox",
		BoundarySelector:    "hr",
		ContentSelector:     "div.mw-parser-output",
	}
}

func pagedFetcher(t *testing.T, pages map[string]string, fetched *[]string) *mock.Fetcher {
	t.Helper()
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if fetched != nil {
				*fetched = append(*fetched, url)
			}
			html, ok := pages[url]
			if !ok {
				return "", klexicrawl.Errorf(klexicrawl.ENOTFOUND, "HTTP 404 for %s", url)
			}
			return html, nil
		},
	}
}

func TestCollector_Collect(t *testing.T) {
	t.Parallel()

	pageOne := `<div class="mw-category">
		<a href="/wiki/Affen">Affen</a>
		<a href="/wiki/Berlin">Berlin</a>
	</div>
	<a href="/wiki/Kategorie:Artikel?from=C">nächste Seite</a>`

	pageTwo := `<div class="mw-category">
		<a href="/wiki/Chemie">Chemie</a>
	</div>`

	pages := map[string]string{
		"https://wiki.test/wiki/Kategorie:Artikel":        pageOne,
		"https://wiki.test/wiki/Kategorie:Artikel?from=C": pageTwo,
	}

	t.Run("follows pagination and returns links in encountered order", func(t *testing.T) {
		t.Parallel()

		c := crawl.NewCollector(pagedFetcher(t, pages, nil), nil)

		links, err := c.Collect(context.Background(), testProfile(), 0)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://wiki.test/wiki/Affen",
			"https://wiki.test/wiki/Berlin",
			"https://wiki.test/wiki/Chemie",
		}, links)
	})

	t.Run("maxPages 1 never fetches a second listing page", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		c := crawl.NewCollector(pagedFetcher(t, pages, &fetched), nil)

		links, err := c.Collect(context.Background(), testProfile(), 1)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://wiki.test/wiki/Affen",
			"https://wiki.test/wiki/Berlin",
		}, links)
		assert.Equal(t, []string{"https://wiki.test/wiki/Kategorie:Artikel"}, fetched)
	})

	t.Run("removes duplicates keeping first-seen order", func(t *testing.T) {
		t.Parallel()

		dupPages := map[string]string{
			"https://wiki.test/wiki/Kategorie:Artikel": `<div class="mw-category">
				<a href="/wiki/Affen">Affen</a>
				<a href="/wiki/Berlin">Berlin</a>
				<a href="/wiki/Affen">Affen</a>
			</div>`,
		}
		c := crawl.NewCollector(pagedFetcher(t, dupPages, nil), nil)

		links, err := c.Collect(context.Background(), testProfile(), 0)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://wiki.test/wiki/Affen",
			"https://wiki.test/wiki/Berlin",
		}, links)
	})

	t.Run("returns empty slice for a listing without links", func(t *testing.T) {
		t.Parallel()

		emptyPages := map[string]string{
			"https://wiki.test/wiki/Kategorie:Artikel": `<div class="mw-category"></div>`,
		}
		c := crawl.NewCollector(pagedFetcher(t, emptyPages, nil), nil)

		links, err := c.Collect(context.Background(), testProfile(), 0)

		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	})

	t.Run("listing fetch failure is fatal", func(t *testing.T) {
		t.Parallel()

		c := crawl.NewCollector(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", klexicrawl.Errorf(klexicrawl.EUNAVAILABLE, "HTTP 503 for %s", url)
			},
		}, nil)

		_, err := c.Collect(context.Background(), testProfile(), 0)

		require.Error(t, err)
		assert.Equal(t, klexicrawl.EUNAVAILABLE, klexicrawl.ErrorCode(err))
	})

	t.Run("failure on a later listing page is also fatal", func(t *testing.T) {
		t.Parallel()

		brokenSecond := map[string]string{
			"https://wiki.test/wiki/Kategorie:Artikel": pageOne,
		}
		c := crawl.NewCollector(pagedFetcher(t, brokenSecond, nil), nil)

		_, err := c.Collect(context.Background(), testProfile(), 0)

		require.Error(t, err)
		assert.Equal(t, klexicrawl.ENOTFOUND, klexicrawl.ErrorCode(err))
	})

	t.Run("stops on a pagination loop", func(t *testing.T) {
		t.Parallel()

		loopPages := map[string]string{
			"https://wiki.test/wiki/Kategorie:Artikel": `<div class="mw-category">
				<a href="/wiki/Affen">Affen</a>
			</div>
			<a href="/wiki/Kategorie:Artikel">nächste Seite</a>`,
		}
		c := crawl.NewCollector(pagedFetcher(t, loopPages, nil), nil)

		links, err := c.Collect(context.Background(), testProfile(), 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://wiki.test/wiki/Affen"}, links)
	})

	t.Run("rejects invalid profile", func(t *testing.T) {
		t.Parallel()

		c := crawl.NewCollector(&mock.Fetcher{}, nil)

		_, err := c.Collect(context.Background(), &klexicrawl.SiteProfile{}, 0)

		require.Error(t, err)
		assert.Equal(t, klexicrawl.EINVALID, klexicrawl.ErrorCode(err))
	})
}
