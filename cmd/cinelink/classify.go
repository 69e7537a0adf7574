package main

import (
	"fmt"

	"github.com/fwojciec/cinelink"
)

// Run executes the classify command. It makes no requests.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	for _, u := range c.URLs {
		kind := cinelink.ClassifyURL(cinelink.NormalizeLink(u))
		if kind == cinelink.PageUnknown {
			kind = "unknown"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", kind, u)
	}
	return nil
}
