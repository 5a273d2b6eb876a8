package redlens

// Thing kinds used by the Reddit JSON API envelope.
const (
	KindComment   = "t1"
	KindPost      = "t3"
	KindSubreddit = "t5"
	KindListing   = "Listing"
)

// Thing wraps a single record with its API kind.
type Thing struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// ListingData holds the children of a Listing.
type ListingData struct {
	Children []Thing `json:"children"`
	After    string  `json:"after,omitempty"`
	Before   string  `json:"before,omitempty"`
}

// Listing is the Reddit API envelope for a sequence of records.
type Listing struct {
	Kind string      `json:"kind"`
	Data ListingData `json:"data"`
}

// NewPostListing wraps posts in a Listing envelope.
func NewPostListing(posts []*Post) *Listing {
	children := make([]Thing, 0, len(posts))
	for _, p := range posts {
		children = append(children, Thing{Kind: KindPost, Data: p})
	}
	return &Listing{Kind: KindListing, Data: ListingData{Children: children}}
}

// NewCommentListing wraps comments in a Listing envelope.
func NewCommentListing(comments []*Comment) *Listing {
	children := make([]Thing, 0, len(comments))
	for _, c := range comments {
		children = append(children, Thing{Kind: KindComment, Data: c})
	}
	return &Listing{Kind: KindListing, Data: ListingData{Children: children}}
}

// NewSubredditListing wraps subreddits in a Listing envelope.
func NewSubredditListing(subs []*Subreddit) *Listing {
	children := make([]Thing, 0, len(subs))
	for _, s := range subs {
		children = append(children, Thing{Kind: KindSubreddit, Data: s})
	}
	return &Listing{Kind: KindListing, Data: ListingData{Children: children}}
}
