package main

import (
	"fmt"

	"github.com/redlens/redlens"
)

// Run executes the comments command.
func (c *CommentsCmd) Run(deps *Dependencies) error {
	batches, err := deps.Client.CommentsMany(deps.Ctx, c.Subreddit, c.IDs, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", redlens.ErrorMessage(err))
		return err
	}

	var comments []*redlens.Comment
	for _, batch := range batches {
		if deps.Archive != nil {
			if err := deps.Archive.SaveComments(deps.Ctx, batch.PostID, batch.Comments); err != nil {
				fmt.Fprintf(deps.Stderr, "error archiving comments for %s: %s\n", batch.PostID, redlens.ErrorMessage(err))
			}
		}
		comments = append(comments, batch.Comments...)
	}

	return printListing(deps.Stdout, redlens.NewCommentListing(comments))
}
