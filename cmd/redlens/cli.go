package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/redlens/redlens"
	"github.com/redlens/redlens/redlib"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Client  *redlib.Client
	Archive redlens.Archive
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Instance string `help:"Redlib instance URL (overrides config)"`
	Database string `help:"Archive database path (overrides config)"`
	Verbose  bool   `short:"v" help:"Log every fetch to stderr"`

	Search     SearchCmd     `cmd:"" help:"Search a subreddit for posts"`
	Posts      PostsCmd      `cmd:"" help:"List posts from a subreddit feed"`
	Post       PostCmd       `cmd:"" help:"Get a single post"`
	Comments   CommentsCmd   `cmd:"" help:"Get comments for one or more posts"`
	Subreddit  SubredditCmd  `cmd:"" help:"Get metadata for one or more subreddits"`
	Subreddits SubredditsCmd `cmd:"" help:"Search for subreddits"`
	Trending   TrendingCmd   `cmd:"" help:"List subreddits trending on r/popular"`
	Archived   ArchivedCmd   `cmd:"" help:"List posts from the local archive"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Subreddit string `arg:"" help:"Subreddit to search in"`
	Query     string `arg:"" help:"Search keywords"`
	Sort      string `default:"relevance" help:"Sort order (relevance, hot, top, new, comments)"`
	Time      string `default:"all" help:"Time range (all, hour, day, week, month, year)"`
	Limit     int    `short:"n" default:"25" help:"Maximum posts to return"`
}

// PostsCmd is the "posts" subcommand.
type PostsCmd struct {
	Subreddit string `arg:"" help:"Subreddit to list"`
	Category  string `default:"hot" help:"Feed category (hot, new, top, rising)"`
	Limit     int    `short:"n" default:"25" help:"Maximum posts to return"`
}

// PostCmd is the "post" subcommand.
type PostCmd struct {
	Subreddit string `arg:"" help:"Subreddit the post belongs to"`
	ID        string `arg:"" help:"Post ID"`
}

// CommentsCmd is the "comments" subcommand.
type CommentsCmd struct {
	Subreddit string   `arg:"" help:"Subreddit the posts belong to"`
	IDs       []string `arg:"" help:"Post IDs"`
	Limit     int      `short:"n" default:"25" help:"Maximum comments per post"`
}

// SubredditCmd is the "subreddit" subcommand.
type SubredditCmd struct {
	Names []string `arg:"" help:"Subreddit display names"`
}

// SubredditsCmd is the "subreddits" subcommand.
type SubredditsCmd struct {
	Query string `arg:"" help:"Search keywords"`
	Limit int    `short:"n" default:"25" help:"Maximum subreddits to return"`
}

// TrendingCmd is the "trending" subcommand.
type TrendingCmd struct{}

// ArchivedCmd is the "archived" subcommand.
type ArchivedCmd struct {
	Subreddit string `help:"Filter by subreddit"`
	Author    string `help:"Filter by author"`
	Limit     int    `short:"n" default:"25" help:"Maximum posts to return"`
	Offset    int    `help:"Skip this many posts"`
}

// printListing writes a Listing envelope as indented JSON.
func printListing(w io.Writer, listing *redlens.Listing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listing)
}
