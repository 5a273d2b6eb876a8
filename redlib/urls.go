package redlib

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/redlens/redlens"
)

// URL construction for the Redlib page shapes the client consumes. Every
// builder returns an absolute URL on the instance base, with query values
// escaped.

func searchPostsURL(base, subreddit, query string, sort redlens.PostSort, timeRange redlens.TimeRange, after string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("restrict_sr", "on")
	v.Set("sort", string(sort))
	v.Set("t", string(timeRange))
	if after != "" {
		v.Set("after", after)
	}
	return fmt.Sprintf("%s/r/%s/search?%s", trimBase(base), url.PathEscape(subreddit), v.Encode())
}

func listPostsURL(base, subreddit string, category redlens.Category, after string) string {
	u := fmt.Sprintf("%s/r/%s/%s", trimBase(base), url.PathEscape(subreddit), category)
	if after != "" {
		v := url.Values{}
		v.Set("after", after)
		u += "?" + v.Encode()
	}
	return u
}

func commentsURL(base, subreddit, postID string) string {
	return fmt.Sprintf("%s/r/%s/comments/%s", trimBase(base), url.PathEscape(subreddit), url.PathEscape(postID))
}

func subredditURL(base, subreddit string) string {
	return fmt.Sprintf("%s/r/%s", trimBase(base), url.PathEscape(subreddit))
}

// searchSubredditsURL builds the site-wide subreddit search (type=sr).
func searchSubredditsURL(base, query string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("type", "sr")
	v.Set("restrict_sr", "")
	return fmt.Sprintf("%s/search?%s", trimBase(base), v.Encode())
}

func trendingURL(base string) string {
	return trimBase(base) + "/r/popular"
}

func trimBase(base string) string {
	return strings.TrimRight(base, "/")
}
