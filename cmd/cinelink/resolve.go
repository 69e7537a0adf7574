package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/cinelink"
	"github.com/fwojciec/cinelink/resolve"
)

// Run executes the resolve command. Outcomes are printed in argument order.
// The command fails if any URL could not be resolved.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	outcomes := resolve.ResolveAll(deps.Ctx, deps.Resolver, c.URLs, deps.Concurrency, nil)

	var failed int
	enc := json.NewEncoder(deps.Stdout)
	for i, o := range outcomes {
		if !o.OK() {
			failed++
		}
		if c.JSON {
			if err := enc.Encode(o); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, cinelink.FormatOutcome(o))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs could not be resolved", failed, len(outcomes))
	}
	return nil
}
