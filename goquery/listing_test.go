package goquery_test

import (
	"testing"

	"github.com/klexicrawl/klexicrawl"
	"github.com/klexicrawl/klexicrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<!DOCTYPE html>
<html>
<body>
<div class="mw-category">
	<a href="/wiki/Affen">Affen</a>
	<a href="/wiki/Berlin">Berlin</a>
	<a href="/w/index.php?title=Spezial">Spezial</a>
</div>
<div class="footer">
	<a href="/wiki/Impressum">Impressum</a>
</div>
<a href="/w/index.php?title=Kategorie:Klexikon-Artikel&amp;pagefrom=C">nächste Seite</a>
</body>
</html>`

func TestExtractArticleLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts category links in document order", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ExtractArticleLinks(listingPage, klexicrawl.Klexikon())

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://klexikon.zum.de/wiki/Affen",
			"https://klexikon.zum.de/wiki/Berlin",
		}, links)
	})

	t.Run("ignores anchors outside the listing selector", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ExtractArticleLinks(listingPage, klexicrawl.Klexikon())

		require.NoError(t, err)
		assert.NotContains(t, links, "https://klexikon.zum.de/wiki/Impressum")
	})

	t.Run("ignores hrefs outside the article path prefix", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ExtractArticleLinks(listingPage, klexicrawl.Klexikon())

		require.NoError(t, err)
		for _, l := range links {
			assert.Contains(t, l, "/wiki/")
		}
	})

	t.Run("returns nothing for a page without links", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ExtractArticleLinks("<div class='mw-category'></div>", klexicrawl.MiniKlexikon())

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestFindNextPage(t *testing.T) {
	t.Parallel()

	t.Run("finds the pagination anchor by text", func(t *testing.T) {
		t.Parallel()

		next, ok, err := goquery.FindNextPage(listingPage, klexicrawl.Klexikon())

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "https://klexikon.zum.de/w/index.php?title=Kategorie:Klexikon-Artikel&pagefrom=C", next)
	})

	t.Run("reports absence of a next-page link", func(t *testing.T) {
		t.Parallel()

		html := `<div class="mw-category"><a href="/wiki/Affen">Affen</a></div>`

		_, ok, err := goquery.FindNextPage(html, klexicrawl.Klexikon())

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("does not match anchors with different text", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/prev">vorherige Seite</a><a href="/other">weiter</a>`

		_, ok, err := goquery.FindNextPage(html, klexicrawl.MiniKlexikon())

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("trims anchor text before matching", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/w/index.php?pagefrom=M"> nächste Seite </a>`

		next, ok, err := goquery.FindNextPage(html, klexicrawl.MiniKlexikon())

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "https://miniklexikon.zum.de/w/index.php?pagefrom=M", next)
	})
}
