package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/cinelink"
)

// Run executes the episodes command.
func (c *EpisodesCmd) Run(deps *Dependencies) error {
	seasons, err := deps.Resolver.Seasons(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cinelink.ErrorMessage(err))
		return err
	}

	if c.JSON {
		if seasons == nil {
			seasons = []cinelink.Season{}
		}
		return json.NewEncoder(deps.Stdout).Encode(seasons)
	}

	if len(seasons) == 0 {
		fmt.Fprintln(deps.Stdout, "No seasons found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, cinelink.FormatSeasons(seasons))
	return nil
}
