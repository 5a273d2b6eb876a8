package main

import (
	"fmt"

	"github.com/redlens/redlens"
	"github.com/redlens/redlens/redlib"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	posts, err := deps.Client.SearchPosts(deps.Ctx, redlib.SearchQuery{
		Subreddit: c.Subreddit,
		Query:     c.Query,
		Sort:      redlens.PostSort(c.Sort),
		Time:      redlens.TimeRange(c.Time),
		Limit:     c.Limit,
	})
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
