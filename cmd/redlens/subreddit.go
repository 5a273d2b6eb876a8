package main

import (
	"fmt"

	"github.com/redlens/redlens"
)

// Run executes the subreddit command.
func (c *SubredditCmd) Run(deps *Dependencies) error {
	subs, err := deps.Client.GetSubreddits(deps.Ctx, c.Names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", redlens.ErrorMessage(err))
		return err
	}

	if deps.Archive != nil {
		for _, sub := range subs {
			if err := deps.Archive.SaveSubreddit(deps.Ctx, sub); err != nil {
				fmt.Fprintf(deps.Stderr, "error archiving r/%s: %s\n", sub.DisplayName, redlens.ErrorMessage(err))
			}
		}
	}

	return printListing(deps.Stdout, redlens.NewSubredditListing(subs))
}
