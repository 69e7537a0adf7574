package goquery_test

import (
	"testing"

	"github.com/fwojciec/cinelink"
	"github.com/fwojciec/cinelink/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonExtractor_ExtractSeasons(t *testing.T) {
	t.Parallel()

	t.Run("extracts seasons with their episodes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="seasons">
<div class="se-c">
<div class="se-q"><span class="se-t">1</span><span class="title">Season 1</span></div>
<div class="se-a"><ul class="episodios">
<li><div class="numerando">1 - 1</div>
<div class="episodiotitle"><a href="https://cinesubz.net/episodes/show-1x1/">Pilot Sinhala Subtitles</a>
<span class="date">Jan. 01, 2024</span></div></li>
<li><div class="numerando">1 - 2</div>
<div class="episodiotitle"><a href="https://cinesubz.lk/episodes/show-1x2/">Second</a></div></li>
</ul></div>
</div>
<div class="se-c">
<div class="se-q"><span class="se-t">2</span><span class="title">Season 2</span></div>
<div class="se-a"><ul class="episodios">
<li><div class="numerando">2 - 1</div>
<div class="episodiotitle"><a href="https://cinesubz.lk/episodes/show-2x1/">Return</a></div></li>
</ul></div>
</div>
</div></body></html>`

		seasons, err := goquery.NewSeasonExtractor().ExtractSeasons(html)

		require.NoError(t, err)
		require.Len(t, seasons, 2)
		assert.Equal(t, cinelink.Season{
			Number: "1",
			Title:  "Season 1",
			Episodes: []cinelink.Episode{
				{Number: "1 - 1", Title: "Pilot", URL: "https://cinesubz.lk/episodes/show-1x1/", Date: "Jan. 01, 2024"},
				{Number: "1 - 2", Title: "Second", URL: "https://cinesubz.lk/episodes/show-1x2/"},
			},
		}, seasons[0])
		assert.Equal(t, "2", seasons[1].Number)
		require.Len(t, seasons[1].Episodes, 1)
		assert.Equal(t, "https://cinesubz.lk/episodes/show-2x1/", seasons[1].Episodes[0].URL)
	})

	t.Run("skips episodes without link", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="seasons">
<div class="se-q"><span class="se-t">1</span></div>
<div class="se-a"><ul>
<li><div class="numerando">1 - 1</div><div class="episodiotitle">Coming soon</div></li>
<li><div class="numerando">1 - 2</div><div class="episodiotitle"><a href="https://cinesubz.lk/episodes/show-1x2/">Aired</a></div></li>
</ul></div>
</div></body></html>`

		seasons, err := goquery.NewSeasonExtractor().ExtractSeasons(html)

		require.NoError(t, err)
		require.Len(t, seasons, 1)
		require.Len(t, seasons[0].Episodes, 1)
		assert.Equal(t, "1 - 2", seasons[0].Episodes[0].Number)
	})

	t.Run("skips seasons without number", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="seasons">
<div class="se-q"><span class="title">Specials</span></div>
<div class="se-a"><ul><li><div class="episodiotitle"><a href="https://cinesubz.lk/episodes/x/">X</a></div></li></ul></div>
</div></body></html>`

		seasons, err := goquery.NewSeasonExtractor().ExtractSeasons(html)

		require.NoError(t, err)
		assert.Empty(t, seasons)
	})

	t.Run("keeps season whose episode list is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="seasons">
<div class="se-q"><span class="se-t">3</span></div>
</div></body></html>`

		seasons, err := goquery.NewSeasonExtractor().ExtractSeasons(html)

		require.NoError(t, err)
		require.Len(t, seasons, 1)
		assert.Empty(t, seasons[0].Episodes)
	})
}
