package main

import (
	"fmt"

	"github.com/redlens/redlens"
)

// Run executes the subreddits command.
func (c *SubredditsCmd) Run(deps *Dependencies) error {
	subs, err := deps.Client.SearchSubreddits(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", redlens.ErrorMessage(err))
		return err
	}

	return printListing(deps.Stdout, redlens.NewSubredditListing(subs))
}
