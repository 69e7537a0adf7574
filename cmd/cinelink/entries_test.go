package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/cinelink"
	main "github.com/fwojciec/cinelink/cmd/cinelink"
	"github.com/fwojciec/cinelink/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesCmd_Run(t *testing.T) {
	t.Parallel()

	entries := []cinelink.DownloadEntry{
		{Quality: "1080p", Size: "2.1 GB", Language: "Sinhala", Link: "https://cinesubz.lk/api/?id=1"},
		{Quality: "720p", Link: "https://cinesubz.lk/api/?id=2"},
	}

	newDeps := func(stdout, stderr *bytes.Buffer, result []cinelink.DownloadEntry, err error) *main.Dependencies {
		return &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Resolver: &mock.Resolver{
				EntriesFn: func(_ context.Context, _ string) ([]cinelink.DownloadEntry, error) {
					return result, err
				},
			},
		}
	}

	t.Run("lists entries", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.EntriesCmd{URL: "https://cinesubz.lk/movies/x/"}

		err := cmd.Run(newDeps(stdout, stderr, entries, nil))

		require.NoError(t, err)
		assert.Equal(t, "1. 1080p  2.1 GB  Sinhala\n   https://cinesubz.lk/api/?id=1\n"+
			"2. 720p  -  -\n   https://cinesubz.lk/api/?id=2\n", stdout.String())
	})

	t.Run("prints JSON array", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.EntriesCmd{URL: "https://cinesubz.lk/movies/x/", JSON: true}

		err := cmd.Run(newDeps(stdout, stderr, entries[:1], nil))

		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"quality":"1080p","size":"2.1 GB","language":"Sinhala","link":"https://cinesubz.lk/api/?id=1"}]`,
			stdout.String())
	})

	t.Run("prints empty JSON array when page has no entries", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.EntriesCmd{URL: "https://cinesubz.lk/movies/x/", JSON: true}

		err := cmd.Run(newDeps(stdout, stderr, nil, nil))

		require.NoError(t, err)
		assert.JSONEq(t, `[]`, stdout.String())
	})

	t.Run("shows message when page has no entries", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.EntriesCmd{URL: "https://cinesubz.lk/movies/x/"}

		err := cmd.Run(newDeps(stdout, stderr, nil, nil))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No download entries found.")
	})

	t.Run("points TV show pages at episodes command", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.EntriesCmd{URL: "https://cinesubz.lk/tvshows/x/"}

		err := cmd.Run(newDeps(stdout, stderr, nil, nil))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `run "cinelink episodes https://cinesubz.lk/tvshows/x/"`)
	})

	t.Run("reports fetch error", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.EntriesCmd{URL: "https://cinesubz.lk/movies/x/"}
		fetchErr := &cinelink.FetchError{URL: "https://cinesubz.lk/movies/x/", Attempts: 3, Err: errors.New("HTTP 503")}

		err := cmd.Run(newDeps(stdout, stderr, nil, fetchErr))

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: failed to fetch https://cinesubz.lk/movies/x/: HTTP 503")
		assert.Empty(t, stdout.String())
	})
}
