package redlens

// Subreddit represents subreddit metadata extracted from a Redlib sidebar.
//
// Redlib does not render every field the Reddit API exposes; Over18 and
// SubredditType carry fixed defaults, and SubscribersKnown mirrors the
// subscriber count.
type Subreddit struct {
	DisplayName       string `json:"display_name"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Subscribers       int    `json:"subscribers"`
	ActiveUsers       int    `json:"active_users"`
	Over18            bool   `json:"over18"`
	PublicDescription string `json:"public_description"`
	SubredditType     string `json:"subreddit_type"`
	SubscribersKnown  int    `json:"subscribers_known"`
}
