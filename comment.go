package redlens

// Comment represents a single comment extracted from a Redlib comments page.
//
// Depth is supplied by the caller per traversal level rather than derived
// from markup nesting; Redlib renders replies inside their parent's block,
// but the extraction engine is boundary-driven and does not count nesting.
type Comment struct {
	ID         string  `json:"id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
	Depth      int     `json:"depth"`
}
