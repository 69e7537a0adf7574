package goquery_test

import (
	"testing"

	"github.com/fwojciec/cinelink"
	"github.com/fwojciec/cinelink/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("reads quality and size tokens from anchor text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://cinesubz.lk/api/?id=1">Download 720p - 1.2 GB</a>
<a href="https://cinesubz.lk/other/page">Not a download</a>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		entries := goquery.NewAnchorStrategy().Extract(doc)

		require.Len(t, entries, 1)
		assert.Equal(t, cinelink.DownloadEntry{Quality: "720p", Size: "1.2 GB", Link: "https://cinesubz.lk/api/?id=1"}, entries[0])
	})

	t.Run("uses full text when no resolution token", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/api/file/abc">Mirror Server</a></body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		entries := goquery.NewAnchorStrategy().Extract(doc)

		require.Len(t, entries, 1)
		assert.Equal(t, "Mirror Server", entries[0].Quality)
		assert.Empty(t, entries[0].Size)
	})

	t.Run("uses placeholder for empty text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="https://cinesubz.lk/api/?id=2"><img src="x.png"></a></body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		entries := goquery.NewAnchorStrategy().Extract(doc)

		require.Len(t, entries, 1)
		assert.Equal(t, cinelink.QualityDownload, entries[0].Quality)
	})

	t.Run("deduplicates equal links after normalization", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://cinesubz.net/api/?id=3">720p</a>
<a href="https://cinesubz.lk/api/?id=3">720p again</a>
<a href="https://cinesubz.lk/api/?id=4">1080p</a>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		entries := goquery.NewAnchorStrategy().Extract(doc)

		require.Len(t, entries, 2)
		assert.Equal(t, "https://cinesubz.lk/api/?id=3", entries[0].Link)
		assert.Equal(t, "https://cinesubz.lk/api/?id=4", entries[1].Link)
		for _, e := range entries {
			assert.NotContains(t, e.Link, cinelink.LegacyDomain)
		}
	})
}
