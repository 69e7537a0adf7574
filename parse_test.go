package cinelink_test

import (
	"testing"

	"github.com/fwojciec/cinelink"
	"github.com/stretchr/testify/assert"
)

func TestParseResolution(t *testing.T) {
	t.Parallel()

	t.Run("finds resolution token", func(t *testing.T) {
		t.Parallel()

		v, ok := cinelink.ParseResolution("Download 1080p WEB-DL")

		assert.True(t, ok)
		assert.Equal(t, "1080p", v)
	})

	t.Run("reports absence", func(t *testing.T) {
		t.Parallel()

		v, ok := cinelink.ParseResolution("Download Now")

		assert.False(t, ok)
		assert.Empty(t, v)
	})
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"720p - 1.2 GB", "1.2 GB", true},
		{"480p 650MB", "650MB", true},
		{"lowercase 2.5gb", "2.5gb", true},
		{"no size here", "", false},
		{"12 KB", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			v, ok := cinelink.ParseSize(tt.text)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseFileName(t *testing.T) {
	t.Parallel()

	text := "Some header\nfile name:  Movie.2024.720p.mp4  \nFile Size: 1.1 GB\nfooter"

	t.Run("matches label case-insensitively up to end of line", func(t *testing.T) {
		t.Parallel()

		v, ok := cinelink.ParseFileName(text)

		assert.True(t, ok)
		assert.Equal(t, "Movie.2024.720p.mp4", v)
	})

	t.Run("reports missing label", func(t *testing.T) {
		t.Parallel()

		_, ok := cinelink.ParseFileName("File Size: 1.1 GB")

		assert.False(t, ok)
	})

	t.Run("reports blank value", func(t *testing.T) {
		t.Parallel()

		_, ok := cinelink.ParseFileName("File Name:   \nnext")

		assert.False(t, ok)
	})
}

func TestParseFileSize(t *testing.T) {
	t.Parallel()

	t.Run("matches value on its own line", func(t *testing.T) {
		t.Parallel()

		v, ok := cinelink.ParseFileSize("File Name: Movie.mp4\nFILE SIZE: 1.1 GB\nfooter")

		assert.True(t, ok)
		assert.Equal(t, "1.1 GB", v)
	})

	t.Run("reports missing label", func(t *testing.T) {
		t.Parallel()

		_, ok := cinelink.ParseFileSize("Duration: 2h")

		assert.False(t, ok)
	})
}

func TestParseRefreshURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content string
		want    string
		ok      bool
	}{
		{"0;url=https://x/y", "https://x/y", true},
		{"5; URL=https://x/y", "https://x/y", true},
		{"0; url='https://x/y'", "https://x/y", true},
		{"0", "", false},
		{"0;url=", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			t.Parallel()

			v, ok := cinelink.ParseRefreshURL(tt.content)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestCleanTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Some Show (2024) Sinhala Subtitles | සිංහල උපසිරැසි සමඟ", "Some Show (2024)"},
		{"Film  2023   with Sinhala Subtitle", "Film 2023"},
		{"Episode 1 | සිංහල උපසිරැසි", "Episode 1"},
		{"  Plain   Title ", "Plain Title"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cinelink.CleanTitle(tt.in))
		})
	}
}
