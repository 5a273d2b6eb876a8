package main

import (
	"fmt"

	"github.com/redlens/redlens"
)

// Run executes the post command.
func (c *PostCmd) Run(deps *Dependencies) error {
	post, err := deps.Client.GetPost(deps.Ctx, c.Subreddit, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", redlens.ErrorMessage(err))
		return err
	}

	if deps.Archive != nil {
		if err := deps.Archive.SavePosts(deps.Ctx, []*redlens.Post{post}); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving post: %s\n", redlens.ErrorMessage(err))
		}
	}

	return printListing(deps.Stdout, redlens.NewPostListing([]*redlens.Post{post}))
}
