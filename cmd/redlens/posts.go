package main

import (
	"fmt"

	"github.com/redlens/redlens"
)

// Run executes the posts command.
func (c *PostsCmd) Run(deps *Dependencies) error {
	posts, err := deps.Client.ListPosts(deps.Ctx, c.Subreddit, redlens.Category(c.Category), c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", redlens.ErrorMessage(err))
		return err
	}

	if deps.Archive != nil {
		if err := deps.Archive.SavePosts(deps.Ctx, posts); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving posts: %s\n", redlens.ErrorMessage(err))
		}
	}

	return printListing(deps.Stdout, redlens.NewPostListing(posts))
}
