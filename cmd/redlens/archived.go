package main

import (
	"fmt"

	"github.com/redlens/redlens"
)

// Run executes the archived command.
func (c *ArchivedCmd) Run(deps *Dependencies) error {
	if deps.Archive == nil {
		fmt.Fprintln(deps.Stderr, "No archive configured. Set a database path in ~/.redlens/config.yaml or pass --database.")
		return fmt.Errorf("no archive configured")
	}

	filter := redlens.PostFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Subreddit != "" {
		filter.Subreddit = &c.Subreddit
	}
	if c.Author != "" {
		filter.Author = &c.Author
	}

	posts, err := deps.Archive.FindPosts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", redlens.ErrorMessage(err))
		return err
	}

	return printListing(deps.Stdout, redlens.NewPostListing(posts))
}
