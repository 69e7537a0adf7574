package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/cinelink"
)

// Run executes the entries command.
func (c *EntriesCmd) Run(deps *Dependencies) error {
	entries, err := deps.Resolver.Entries(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cinelink.ErrorMessage(err))
		return err
	}

	if c.JSON {
		if entries == nil {
			entries = []cinelink.DownloadEntry{}
		}
		return json.NewEncoder(deps.Stdout).Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No download entries found.")
		if cinelink.ClassifyURL(c.URL) == cinelink.PageTVShow {
			fmt.Fprintf(deps.Stdout, "This is a TV show page; run \"cinelink episodes %s\" to list its episodes.\n", c.URL)
		}
		return nil
	}

	fmt.Fprintln(deps.Stdout, cinelink.FormatEntries(entries))
	return nil
}
