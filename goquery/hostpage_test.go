package goquery_test

import (
	"testing"

	"github.com/fwojciec/cinelink"
	"github.com/fwojciec/cinelink/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hostPageURL = "https://sonic-cloud.example/file/abc"

func TestHostPageExtractor_ExtractHostedFile(t *testing.T) {
	t.Parallel()

	t.Run("extracts metadata and labeled mirrors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="info">
<p>File Name: Film.2024.720p.WEB-DL.mp4</p>
<p>File Size: 1.2 GB</p>
</div>
<a href="https://cs.example/dl/1">Direct Download CS</a>
<a href="https://d1.example/dl/1">Direct Download 1</a>
<a href="https://drive.example/abc">Google Download 1</a>
<a href="https://drive.example/def">Google Download 2</a>
<a href="https://t.me/bot?start=abc">Telegram</a>
</body></html>`

		file, err := goquery.NewHostPageExtractor().ExtractHostedFile(html, hostPageURL)

		require.NoError(t, err)
		assert.Equal(t, "Film.2024.720p.WEB-DL.mp4", file.FileName)
		assert.Equal(t, "1.2 GB", file.FileSize)
		assert.Equal(t, hostPageURL, file.StreamURL)
		assert.Equal(t, map[cinelink.MirrorKind]string{
			cinelink.MirrorDirectCS: "https://cs.example/dl/1",
			cinelink.MirrorDirect1:  "https://d1.example/dl/1",
			cinelink.MirrorGoogle1:  "https://drive.example/abc",
			cinelink.MirrorGoogle2:  "https://drive.example/def",
			cinelink.MirrorTelegram: "https://t.me/bot?start=abc",
		}, file.Mirrors)
	})

	t.Run("keeps first anchor for a mirror kind", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://drive.example/abc">Google Download 1</a>
<a href="https://drive.example/zzz">google 1 (backup)</a>
</body></html>`

		file, err := goquery.NewHostPageExtractor().ExtractHostedFile(html, hostPageURL)

		require.NoError(t, err)
		u, ok := file.Mirror(cinelink.MirrorGoogle1)
		assert.True(t, ok)
		assert.Equal(t, "https://drive.example/abc", u)
	})

	t.Run("matches labels split across whitespace", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="https://drive.example/abc"><span>Google</span>
			<span>Download 1</span></a></body></html>`

		file, err := goquery.NewHostPageExtractor().ExtractHostedFile(html, hostPageURL)

		require.NoError(t, err)
		u, ok := file.Mirror(cinelink.MirrorGoogle1)
		assert.True(t, ok)
		assert.Equal(t, "https://drive.example/abc", u)
	})

	t.Run("falls back to hosting URL patterns for unset kinds", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://cscloud.example/f/1">Server A</a>
<a href="https://drive.google.com/file/d/1">Server B</a>
<a href="https://drive.google.com/file/d/2">Server C</a>
</body></html>`

		file, err := goquery.NewHostPageExtractor().ExtractHostedFile(html, hostPageURL)

		require.NoError(t, err)
		assert.Equal(t, "https://cscloud.example/f/1", file.Mirrors[cinelink.MirrorDirectCS])
		assert.Equal(t, "https://drive.google.com/file/d/1", file.Mirrors[cinelink.MirrorGoogle1])
	})

	t.Run("does not let fallback override a labeled mirror", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://drive.google.com/file/d/9">Mirror</a>
<a href="https://drive.example/abc">Google Download 1</a>
</body></html>`

		file, err := goquery.NewHostPageExtractor().ExtractHostedFile(html, hostPageURL)

		require.NoError(t, err)
		assert.Equal(t, "https://drive.example/abc", file.Mirrors[cinelink.MirrorGoogle1])
	})

	t.Run("returns stream URL and empty fields for a bare page", func(t *testing.T) {
		t.Parallel()

		file, err := goquery.NewHostPageExtractor().ExtractHostedFile(`<html><body><p>Nothing here</p></body></html>`, hostPageURL)

		require.NoError(t, err)
		assert.Empty(t, file.FileName)
		assert.Empty(t, file.FileSize)
		assert.Equal(t, hostPageURL, file.StreamURL)
		assert.Empty(t, file.Mirrors)
		assert.True(t, file.HasDownloads())
	})

	t.Run("ignores anchors without href", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a>Telegram</a><a href="https://t.me/real">Telegram</a></body></html>`

		file, err := goquery.NewHostPageExtractor().ExtractHostedFile(html, hostPageURL)

		require.NoError(t, err)
		assert.Equal(t, "https://t.me/real", file.Mirrors[cinelink.MirrorTelegram])
	})
}
