package markup

import (
	"regexp"
	"strings"
)

// Node is a read-only view over a contiguous fragment of a page. The
// matched substring is never copied or mutated, and a Node is meant to be
// discarded once its fields have been read.
type Node struct {
	frag string
}

// descendantPattern is one Node.Find rule. When group is non-zero the
// node's fragment is that capture group rather than the whole match, which
// lets a pattern anchor on an ancestor while exposing the descendant.
type descendantPattern struct {
	re    *regexp.Regexp
	group int
}

// Descendant patterns, one per selector, first match wins. These encode
// the template's structure directly: the title anchor is always nested in
// an <h2 class="post_title">, body text always sits in a .md block inside
// the body container, and so on.
var descendantPatterns = map[Selector]descendantPattern{
	PostTitle: {
		// Anchored on the h2 so a stray anchor earlier in the item
		// cannot win; the fragment is the anchor itself.
		re:    regexp.MustCompile(`(?is)<h2[^>]*class="post_title"[^>]*>.*?(<a[^>]*href="[^"]*"[^>]*>.*?</a>)`),
		group: 1,
	},
	PostSubreddit: {
		re: regexp.MustCompile(`(?i)<a[^>]*class="post_subreddit"[^>]*>[^<]+</a>`),
	},
	PostAuthor: {
		re: regexp.MustCompile(`(?i)<a[^>]*class="post_author[^"]*"[^>]*>[^<]*</a>`),
	},
	Created: {
		re: regexp.MustCompile(`(?i)<span[^>]*class="created"[^>]*title="[^"]*"[^>]*>[^<]*</span>`),
	},
	PostScore: {
		re: regexp.MustCompile(`(?is)<div[^>]*class="post_score"[^>]*title="[^"]*"[^>]*>.*?</div>`),
	},
	PostComments: {
		re: regexp.MustCompile(`(?i)<a[^>]*class="post_comments"[^>]*title="[^"]*"[^>]*href="[^"]*"[^>]*>`),
	},
	PostBody: {
		re: regexp.MustCompile(`(?is)<div[^>]*class="post_body[^"]*"[^>]*>.*?<div[^>]*class="md"[^>]*>.*?</div>`),
	},
	PostFlair: {
		re:    regexp.MustCompile(`(?is)<a[^>]*class="post_flair"[^>]*>.*?(<span>[^<]*</span>)`),
		group: 1,
	},
	CommentAuthor: {
		re: regexp.MustCompile(`(?i)<a[^>]*class="comment_author[^"]*"[^>]*>[^<]*</a>`),
	},
	CommentBody: {
		re: regexp.MustCompile(`(?is)<div[^>]*class="comment_body[^"]*"[^>]*>.*?<div[^>]*class="md"[^>]*>.*?</div>`),
	},
	CommentScore: {
		re: regexp.MustCompile(`(?is)<p[^>]*class="comment_score"[^>]*>.*?</p>`),
	},
}

// Find locates descendant fields within the node's own fragment. It never
// searches outside the fragment. All current selectors yield at most one
// result; absence is an empty slice, never an error.
func (n Node) Find(sel Selector) []Node {
	p, ok := descendantPatterns[sel]
	if !ok {
		return nil
	}
	m := p.re.FindStringSubmatchIndex(n.frag)
	if m == nil {
		return nil
	}
	lo, hi := m[2*p.group], m[2*p.group+1]
	if lo < 0 {
		return nil
	}
	return []Node{{frag: n.frag[lo:hi]}}
}

// FindFirst returns the first descendant match for the selector.
// The bool result is false if nothing matched.
func (n Node) FindFirst(sel Selector) (Node, bool) {
	nodes := n.Find(sel)
	if len(nodes) == 0 {
		return Node{}, false
	}
	return nodes[0], true
}

// Attr returns the value of a quoted attribute from the fragment's own
// opening tag. The scan is case-insensitive and deliberately stops at the
// first '>' so an attribute of a nested element can never be picked up.
func (n Node) Attr(name string) (string, bool) {
	tag := n.frag
	if i := strings.IndexByte(tag, '>'); i >= 0 {
		tag = tag[:i+1]
	}
	re := regexp.MustCompile(`(?i)\s` + regexp.QuoteMeta(name) + `="([^"]*)"`)
	m := re.FindStringSubmatch(tag)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// HTML returns the node's raw markup fragment.
func (n Node) HTML() string {
	return n.frag
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// entityReplacer decodes the minimal entity set Redlib emits. The
// replacement is single-pass: "&amp;lt;" decodes to "&lt;", not "<".
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#x27;", "'",
)

// Text renders the fragment as plain text: all tags stripped, entities
// decoded, surrounding whitespace trimmed. This is the canonical
// render-to-text operation every downstream decoder consumes.
func (n Node) Text() string {
	s := tagRe.ReplaceAllString(n.frag, "")
	return strings.TrimSpace(entityReplacer.Replace(s))
}

var (
	pOpenRe  = regexp.MustCompile(`(?i)<p[^>]*>`)
	pCloseRe = regexp.MustCompile(`(?i)</p>`)
	brRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// PlainText converts a markup fragment to newline-delimited plain text,
// preserving paragraph and line-break structure: paragraph openings become
// blank-line separators, <br> becomes a newline, every other tag is
// stripped, entities are decoded, and the result is trimmed. Used for the
// post body, where structure matters.
func PlainText(fragment string) string {
	s := pOpenRe.ReplaceAllString(fragment, "\n\n")
	s = pCloseRe.ReplaceAllString(s, "")
	s = brRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(entityReplacer.Replace(s))
}
