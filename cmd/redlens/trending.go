package main

import (
	"fmt"

	"github.com/redlens/redlens"
)

// Run executes the trending command.
func (c *TrendingCmd) Run(deps *Dependencies) error {
	subs, err := deps.Client.Trending(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", redlens.ErrorMessage(err))
		return err
	}

	return printListing(deps.Stdout, redlens.NewSubredditListing(subs))
}
