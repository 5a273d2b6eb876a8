// Package markup locates and extracts fields from Redlib's server-rendered
// HTML using regular expressions rather than a DOM.
//
// Redlib pages come from one fixed template family, so the selector set is
// closed: each Selector maps to exactly one anchored pattern. Repeating
// items (posts, comments) are boundary-driven, not depth-counting: an
// item's span runs from its opening tag to the next sibling marker of the
// same class, a horizontal rule, or the close of the content region. The
// boundary is located by a separate scan and never consumed, so adjacent
// items cannot overlap and matching resumes exactly at the boundary.
//
// The engine never mutates its input and holds no state between calls;
// every function here is safe for concurrent use.
package markup

import "regexp"

// Selector names a fixed matching rule. The values follow the CSS-ish
// notation of the Redlib templates they target.
type Selector string

// Page-level selectors.
const (
	// PostItem matches one repeating post block in a listing page.
	PostItem Selector = ".post"

	// CommentItem matches one repeating comment block in a comments page.
	CommentItem Selector = ".comment"

	// SubredditTitle, SubredditName, and SubredditDescription are
	// singletons from the subreddit sidebar.
	SubredditTitle       Selector = "#sub_title"
	SubredditName        Selector = "#sub_name"
	SubredditDescription Selector = "#sub_description"

	// SubredditDetails matches the titled rows inside the sidebar
	// details block: subscribers first, then active users.
	SubredditDetails Selector = "#sub_details div"
)

// Node-level descendant selectors.
const (
	PostTitle     Selector = ".post_title a"
	PostSubreddit Selector = ".post_subreddit"
	PostAuthor    Selector = ".post_author"
	Created       Selector = ".created"
	PostScore     Selector = ".post_score"
	PostComments  Selector = ".post_comments"
	PostBody      Selector = ".post_body .md"
	PostFlair     Selector = ".post_flair span"
	CommentAuthor Selector = ".comment_author"
	CommentBody   Selector = ".comment_body .md"
	CommentScore  Selector = ".comment_score"
)

// detailRowCap bounds SubredditDetails results: the sidebar renders the
// subscriber row and the active-user row, in that order.
const detailRowCap = 2

// Opening-tag patterns for repeating items. The class attribute must
// contain the target token as a whole word: class="post_title" is not a
// ".post" item, class="post highlighted" is.
var (
	postOpenRe    = regexp.MustCompile(`(?i)<div[^>]*class="(?:[^"]*\s)?post(?:\s[^"]*)?"[^>]*>`)
	commentOpenRe = regexp.MustCompile(`(?i)<div[^>]*class="(?:[^"]*\s)?comment(?:\s[^"]*)?"[^>]*>`)
)

// Item boundaries beyond the next same-class opening tag: a horizontal
// rule or the close of the enclosing content region.
var itemBoundaryRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<hr[\s/>]`),
	regexp.MustCompile(`(?i)</main>`),
	regexp.MustCompile(`(?i)</body>`),
}

// Singleton patterns for the subreddit sidebar.
var (
	subTitleRe       = regexp.MustCompile(`(?i)<h1[^>]*id="sub_title"[^>]*>[^<]+</h1>`)
	subNameRe        = regexp.MustCompile(`(?i)<p[^>]*id="sub_name"[^>]*>[^<]+</p>`)
	subDescriptionRe = regexp.MustCompile(`(?i)<p[^>]*id="sub_description"[^>]*>[^<]+</p>`)
	subDetailsOpenRe = regexp.MustCompile(`(?i)<div[^>]*id="sub_details"[^>]*>`)
	titledDivRe      = regexp.MustCompile(`(?i)<div[^>]*title="[^"]*"[^>]*>`)
	divCloseRe       = regexp.MustCompile(`(?i)</div>`)
)

// FindAll returns every node the selector matches in the page, in document
// order. An unrecognized selector or a page with no matches yields an
// empty result, never an error: fields are genuinely optional on the
// source site and absence is the dominant case.
func FindAll(page string, sel Selector) []Node {
	switch sel {
	case PostItem:
		return matchItems(page, postOpenRe)
	case CommentItem:
		return matchItems(page, commentOpenRe)
	case SubredditTitle:
		return matchSingleton(page, subTitleRe)
	case SubredditName:
		return matchSingleton(page, subNameRe)
	case SubredditDescription:
		return matchSingleton(page, subDescriptionRe)
	case SubredditDetails:
		return matchDetailRows(page)
	}
	return nil
}

// FindFirst returns the first node the selector matches in the page.
// The bool result is false if nothing matched.
func FindFirst(page string, sel Selector) (Node, bool) {
	nodes := FindAll(page, sel)
	if len(nodes) == 0 {
		return Node{}, false
	}
	return nodes[0], true
}

// matchItems scans for repeating item blocks. Each item starts at an
// opening tag matched by openRe and spans to the earliest boundary: the
// next openRe match, any itemBoundaryRes match, or end of input. The scan
// resumes at the boundary itself, so consecutive items never overlap.
func matchItems(page string, openRe *regexp.Regexp) []Node {
	var nodes []Node
	pos := 0
	for pos < len(page) {
		loc := openRe.FindStringIndex(page[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		afterOpen := pos + loc[1]

		end := len(page)
		if next := openRe.FindStringIndex(page[afterOpen:]); next != nil {
			end = afterOpen + next[0]
		}
		for _, re := range itemBoundaryRes {
			if b := re.FindStringIndex(page[afterOpen:]); b != nil && afterOpen+b[0] < end {
				end = afterOpen + b[0]
			}
		}

		nodes = append(nodes, Node{frag: page[start:end]})
		pos = end
	}
	return nodes
}

// matchSingleton returns the first match of re as a single node.
func matchSingleton(page string, re *regexp.Regexp) []Node {
	loc := re.FindStringIndex(page)
	if loc == nil {
		return nil
	}
	return []Node{{frag: page[loc[0]:loc[1]]}}
}

// matchDetailRows collects titled rows following the #sub_details opening
// tag, capped at detailRowCap, in document order. Each row's fragment runs
// from its opening tag to its closing tag so both the title attribute and
// the inner text are available as precision sources.
func matchDetailRows(page string) []Node {
	open := subDetailsOpenRe.FindStringIndex(page)
	if open == nil {
		return nil
	}

	var nodes []Node
	pos := open[1]
	for len(nodes) < detailRowCap {
		loc := titledDivRe.FindStringIndex(page[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		afterOpen := pos + loc[1]

		end := len(page)
		if c := divCloseRe.FindStringIndex(page[afterOpen:]); c != nil {
			end = afterOpen + c[0]
		}

		nodes = append(nodes, Node{frag: page[start:end]})
		pos = end
	}
	return nodes
}
