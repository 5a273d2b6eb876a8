package redlens

// Post represents a single Reddit post extracted from a Redlib listing or
// comments page. Field names mirror the Reddit JSON API so downstream
// consumers can treat the output as a drop-in replacement.
type Post struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
	Selftext      string  `json:"selftext"`
	Score         int     `json:"score"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    float64 `json:"created_utc"`
	Permalink     string  `json:"permalink"`
	URL           string  `json:"url"`
	LinkFlairText string  `json:"link_flair_text,omitempty"`
}

// PostSort is the sort order for post searches.
type PostSort string

// Sort orders accepted by Redlib's search endpoint.
const (
	SortRelevance PostSort = "relevance"
	SortHot       PostSort = "hot"
	SortTop       PostSort = "top"
	SortNew       PostSort = "new"
	SortComments  PostSort = "comments"
)

// Valid reports whether the sort order is one Redlib accepts.
func (s PostSort) Valid() bool {
	switch s {
	case SortRelevance, SortHot, SortTop, SortNew, SortComments:
		return true
	}
	return false
}

// TimeRange restricts search results by age.
type TimeRange string

// Time ranges accepted by Redlib's search endpoint.
const (
	TimeAll   TimeRange = "all"
	TimeHour  TimeRange = "hour"
	TimeDay   TimeRange = "day"
	TimeWeek  TimeRange = "week"
	TimeMonth TimeRange = "month"
	TimeYear  TimeRange = "year"
)

// Valid reports whether the time range is one Redlib accepts.
func (t TimeRange) Valid() bool {
	switch t {
	case TimeAll, TimeHour, TimeDay, TimeWeek, TimeMonth, TimeYear:
		return true
	}
	return false
}

// Category is a subreddit listing feed.
type Category string

// Listing feeds exposed by Redlib at /r/<subreddit>/<category>.
const (
	CategoryHot    Category = "hot"
	CategoryNew    Category = "new"
	CategoryTop    Category = "top"
	CategoryRising Category = "rising"
)

// Valid reports whether the category is a known listing feed.
func (c Category) Valid() bool {
	switch c {
	case CategoryHot, CategoryNew, CategoryTop, CategoryRising:
		return true
	}
	return false
}
