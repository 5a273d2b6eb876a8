package redlib

import (
	"fmt"
	"strings"
	"time"

	"github.com/redlens/redlens"
	"github.com/redlens/redlens/markup"
)

// canonicalOrigin absolutizes outbound links that Redlib renders relative.
const canonicalOrigin = "https://www.reddit.com"

// PostFromNode assembles a Post record from one ".post" item node.
// Every field is optional in the markup; absence decodes to the zero
// value. The clock resolves relative timestamps.
func PostFromNode(n markup.Node, now time.Time) *redlens.Post {
	post := &redlens.Post{}
	post.ID, _ = n.Attr("id")

	if title, ok := n.FindFirst(markup.PostTitle); ok {
		post.Title = title.Text()
		post.URL, _ = title.Attr("href")
	}

	if sub, ok := n.FindFirst(markup.PostSubreddit); ok {
		post.Subreddit = strings.TrimSpace(strings.TrimPrefix(sub.Text(), "r/"))
	}

	if author, ok := n.FindFirst(markup.PostAuthor); ok {
		post.Author = strings.TrimSpace(strings.TrimPrefix(author.Text(), "u/"))
	}

	post.CreatedUTC = DecodeTimestamp(attrOrText(n, markup.Created, "title", ""), now)
	post.Score = DecodeScore(attrOrText(n, markup.PostScore, "title", "0"))
	post.NumComments = DecodeCommentCount(attrOrText(n, markup.PostComments, "title", "0 comments"))

	if body, ok := n.FindFirst(markup.PostBody); ok {
		post.Selftext = markup.PlainText(body.HTML())
	}

	if flair, ok := n.FindFirst(markup.PostFlair); ok {
		post.LinkFlairText = flair.Text()
	}

	// Permalink comes from the comment-count link; when the markup lacks
	// one, construct the canonical comments path.
	if comments, ok := n.FindFirst(markup.PostComments); ok {
		post.Permalink, _ = comments.Attr("href")
	}
	if post.Permalink == "" {
		post.Permalink = fmt.Sprintf("/r/%s/comments/%s/", post.Subreddit, post.ID)
	}

	if !strings.HasPrefix(post.URL, "http") {
		post.URL = canonicalOrigin + post.URL
	}

	return post
}

// CommentFromNode assembles a Comment record from one ".comment" item
// node. Depth is attached verbatim: it is supplied by the caller per
// traversal level, not derived from markup nesting.
func CommentFromNode(n markup.Node, depth int, now time.Time) *redlens.Comment {
	comment := &redlens.Comment{Depth: depth}

	// Redlib identifies comments with data-id; fall back to a plain id.
	if id, ok := n.Attr("data-id"); ok {
		comment.ID = id
	} else if id, ok := n.Attr("id"); ok {
		comment.ID = id
	}

	if author, ok := n.FindFirst(markup.CommentAuthor); ok {
		comment.Author = strings.TrimSpace(strings.TrimPrefix(author.Text(), "u/"))
	}

	if body, ok := n.FindFirst(markup.CommentBody); ok {
		comment.Body = body.Text()
	}

	if score, ok := n.FindFirst(markup.CommentScore); ok {
		comment.Score = DecodeScore(score.Text())
	}

	comment.CreatedUTC = DecodeTimestamp(attrOrText(n, markup.Created, "title", ""), now)

	return comment
}

// SubredditFromPage assembles a Subreddit record from a subreddit page's
// sidebar. Fields the template does not expose carry fixed defaults:
// Over18 is false, the type is "public", and SubscribersKnown mirrors the
// subscriber count.
func SubredditFromPage(page string) *redlens.Subreddit {
	sub := &redlens.Subreddit{SubredditType: "public"}

	if title, ok := markup.FindFirst(page, markup.SubredditTitle); ok {
		sub.Title = title.Text()
	}
	if name, ok := markup.FindFirst(page, markup.SubredditName); ok {
		sub.DisplayName = strings.TrimSpace(strings.TrimPrefix(name.Text(), "r/"))
	}
	if desc, ok := markup.FindFirst(page, markup.SubredditDescription); ok {
		sub.Description = desc.Text()
		sub.PublicDescription = sub.Description
	}

	rows := markup.FindAll(page, markup.SubredditDetails)
	if len(rows) > 0 {
		sub.Subscribers = DecodeCount(rowValue(rows[0]))
	}
	if len(rows) > 1 {
		sub.ActiveUsers = DecodeCount(rowValue(rows[1]))
	}
	sub.SubscribersKnown = sub.Subscribers

	return sub
}

// attrOrText locates sel within n and returns its named attribute when
// present, its text otherwise, and fallback when the field is absent or
// empty. The attribute is the precision source: Redlib abbreviates visible
// text ("1.2k") but keeps exact values in title attributes.
func attrOrText(n markup.Node, sel markup.Selector, attr, fallback string) string {
	node, ok := n.FindFirst(sel)
	if !ok {
		return fallback
	}
	if v, ok := node.Attr(attr); ok && v != "" {
		return v
	}
	if text := node.Text(); text != "" {
		return text
	}
	return fallback
}

// rowValue returns a detail row's title attribute when present, else its
// inner text.
func rowValue(n markup.Node) string {
	if v, ok := n.Attr("title"); ok && v != "" {
		return v
	}
	return n.Text()
}
