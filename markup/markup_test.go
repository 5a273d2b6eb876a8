package markup_test

import (
	"testing"

	"github.com/redlens/redlens/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPostPage = `<html><body><main>
<div class="post" id="abc123">
	<h2 class="post_title"><a href="/r/golang/comments/abc123/first/">First post</a></h2>
	<a class="post_subreddit" href="/r/golang">r/golang</a>
	<a class="post_author ps" href="/u/alice">u/alice</a>
	<span class="created" title="Dec 24 2025, 03:36:38 UTC">3h ago</span>
	<div class="post_score" title="128">128<span class="label"> points</span></div>
	<a class="post_comments" title="45 comments" href="/r/golang/comments/abc123/first/">45 comments</a>
</div>
<div class="post" id="def456">
	<h2 class="post_title"><a href="https://example.com/article">Second post</a></h2>
	<a class="post_subreddit" href="/r/science">r/science</a>
</div>
</main></body></html>`

func TestFindAll_PostItems(t *testing.T) {
	t.Parallel()

	t.Run("returns items in document order with captured ids", func(t *testing.T) {
		t.Parallel()

		posts := markup.FindAll(twoPostPage, markup.PostItem)
		require.Len(t, posts, 2)

		id, ok := posts[0].Attr("id")
		require.True(t, ok)
		assert.Equal(t, "abc123", id)

		id, ok = posts[1].Attr("id")
		require.True(t, ok)
		assert.Equal(t, "def456", id)
	})

	t.Run("consecutive items do not overlap", func(t *testing.T) {
		t.Parallel()

		posts := markup.FindAll(twoPostPage, markup.PostItem)
		require.Len(t, posts, 2)

		assert.NotContains(t, posts[0].HTML(), "def456")
		assert.NotContains(t, posts[1].HTML(), "abc123")
	})

	t.Run("zero matching items yields an empty result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, markup.FindAll("<html><body><p>nothing here</p></body></html>", markup.PostItem))
	})

	t.Run("class token must match as a whole word", func(t *testing.T) {
		t.Parallel()

		page := `<div class="post_title">not an item</div><div class="post highlighted" id="x9">item</div>`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)

		id, _ := posts[0].Attr("id")
		assert.Equal(t, "x9", id)
	})

	t.Run("horizontal rule terminates the last item", func(t *testing.T) {
		t.Parallel()

		page := `<div class="post" id="a1">body text</div><hr /><footer>junk</footer>`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)
		assert.NotContains(t, posts[0].HTML(), "junk")
	})

	t.Run("item without a trailing boundary runs to end of document", func(t *testing.T) {
		t.Parallel()

		page := `<div class="post" id="a1"><p>tail`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)
		assert.Contains(t, posts[0].HTML(), "tail")
	})

	t.Run("tag and attribute names match case-insensitively", func(t *testing.T) {
		t.Parallel()

		page := `<DIV CLASS="post" ID="a1">x</DIV></MAIN>`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)

		id, ok := posts[0].Attr("id")
		require.True(t, ok)
		assert.Equal(t, "a1", id)
	})

	t.Run("unrecognized selector yields an empty result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, markup.FindAll(twoPostPage, markup.Selector(".bogus")))
	})
}

func TestFindAll_CommentItems(t *testing.T) {
	t.Parallel()

	page := `<main>
<div class="comment" data-id="c1">
	<a class="comment_author ps" href="/u/bob">u/bob</a>
	<div class="comment_body"><div class="md"><p>First &amp; foremost</p></div></div>
	<p class="comment_score" title="12">12</p>
</div>
<div class="comment" data-id="c2">
	<a class="comment_author" href="/u/carol">u/carol</a>
</div>
</main>`

	comments := markup.FindAll(page, markup.CommentItem)
	require.Len(t, comments, 2)

	id, ok := comments[0].Attr("data-id")
	require.True(t, ok)
	assert.Equal(t, "c1", id)
	assert.NotContains(t, comments[0].HTML(), "carol")
}

func TestFindAll_Singletons(t *testing.T) {
	t.Parallel()

	page := `<aside>
<h1 id="sub_title">Go programming</h1>
<p id="sub_name">r/golang</p>
<p id="sub_description">Ask questions about Go.</p>
</aside>`

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()

		double := page + `<h1 id="sub_title">Duplicate</h1>`
		node, ok := markup.FindFirst(double, markup.SubredditTitle)
		require.True(t, ok)
		assert.Equal(t, "Go programming", node.Text())
	})

	t.Run("all three sidebar singletons resolve", func(t *testing.T) {
		t.Parallel()

		name, ok := markup.FindFirst(page, markup.SubredditName)
		require.True(t, ok)
		assert.Equal(t, "r/golang", name.Text())

		desc, ok := markup.FindFirst(page, markup.SubredditDescription)
		require.True(t, ok)
		assert.Equal(t, "Ask questions about Go.", desc.Text())
	})

	t.Run("absent singleton yields no node", func(t *testing.T) {
		t.Parallel()

		_, ok := markup.FindFirst("<html></html>", markup.SubredditTitle)
		assert.False(t, ok)
	})
}

func TestFindAll_DetailRows(t *testing.T) {
	t.Parallel()

	page := `<div id="sub_details">
<label>Members</label><label>Active</label>
<div title="1,234,567">1.2m<span>members</span></div>
<div title="4,321">4.3k<span>active</span></div>
<div title="999">should be ignored</div>
</div>`

	rows := markup.FindAll(page, markup.SubredditDetails)
	require.Len(t, rows, 2)

	title, ok := rows[0].Attr("title")
	require.True(t, ok)
	assert.Equal(t, "1,234,567", title)

	title, ok = rows[1].Attr("title")
	require.True(t, ok)
	assert.Equal(t, "4,321", title)

	// Inner text remains available as the fallback precision source.
	assert.Equal(t, "1.2mmembers", rows[0].Text())
}

func TestNode_Find(t *testing.T) {
	t.Parallel()

	posts := markup.FindAll(twoPostPage, markup.PostItem)
	require.Len(t, posts, 2)

	t.Run("title anchor exposes link target and display text", func(t *testing.T) {
		t.Parallel()

		title, ok := posts[0].FindFirst(markup.PostTitle)
		require.True(t, ok)
		assert.Equal(t, "First post", title.Text())

		href, ok := title.Attr("href")
		require.True(t, ok)
		assert.Equal(t, "/r/golang/comments/abc123/first/", href)
	})

	t.Run("labels and timestamp resolve within the item", func(t *testing.T) {
		t.Parallel()

		sub, ok := posts[0].FindFirst(markup.PostSubreddit)
		require.True(t, ok)
		assert.Equal(t, "r/golang", sub.Text())

		author, ok := posts[0].FindFirst(markup.PostAuthor)
		require.True(t, ok)
		assert.Equal(t, "u/alice", author.Text())

		created, ok := posts[0].FindFirst(markup.Created)
		require.True(t, ok)
		title, _ := created.Attr("title")
		assert.Equal(t, "Dec 24 2025, 03:36:38 UTC", title)
		assert.Equal(t, "3h ago", created.Text())
	})

	t.Run("score and comment count carry title attributes", func(t *testing.T) {
		t.Parallel()

		score, ok := posts[0].FindFirst(markup.PostScore)
		require.True(t, ok)
		title, _ := score.Attr("title")
		assert.Equal(t, "128", title)

		comments, ok := posts[0].FindFirst(markup.PostComments)
		require.True(t, ok)
		title, _ = comments.Attr("title")
		assert.Equal(t, "45 comments", title)
		href, _ := comments.Attr("href")
		assert.Equal(t, "/r/golang/comments/abc123/first/", href)
	})

	t.Run("find is scoped to the node's own fragment", func(t *testing.T) {
		t.Parallel()

		// The second post has no author; the first post's author
		// must not leak into it.
		_, ok := posts[1].FindFirst(markup.PostAuthor)
		assert.False(t, ok)
	})

	t.Run("absent field yields an empty result", func(t *testing.T) {
		t.Parallel()

		_, ok := posts[1].FindFirst(markup.PostFlair)
		assert.False(t, ok)
	})
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	t.Run("scan is restricted to the opening tag", func(t *testing.T) {
		t.Parallel()

		page := `<div class="post" id="outer"><span id="inner">x</span></div>`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)

		id, ok := posts[0].Attr("id")
		require.True(t, ok)
		assert.Equal(t, "outer", id)
	})

	t.Run("missing attribute on the opening tag is absent", func(t *testing.T) {
		t.Parallel()

		page := `<div class="post"><span title="nested">x</span></div>`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)

		_, ok := posts[0].Attr("title")
		assert.False(t, ok)
	})

	t.Run("attribute names match case-insensitively", func(t *testing.T) {
		t.Parallel()

		page := `<div class="post" DATA-ID="c7">x</div>`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)

		id, ok := posts[0].Attr("data-id")
		require.True(t, ok)
		assert.Equal(t, "c7", id)
	})
}

func TestNode_Text(t *testing.T) {
	t.Parallel()

	t.Run("strips tags and decodes the fixed entity set", func(t *testing.T) {
		t.Parallel()

		page := `<div class="post" id="e1"><h2 class="post_title"><a href="/x">&amp;&lt;&gt;&quot;&#x27;&nbsp;</a></h2></div>`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)

		title, ok := posts[0].FindFirst(markup.PostTitle)
		require.True(t, ok)
		assert.Equal(t, `&<>"'`, title.Text())
	})

	t.Run("tolerates unclosed tags", func(t *testing.T) {
		t.Parallel()

		page := `<div class="post" id="e2"><p>one<br>two`
		posts := markup.FindAll(page, markup.PostItem)
		require.Len(t, posts, 1)
		assert.Equal(t, "onetwo", posts[0].Text())
	})
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	t.Run("maps paragraphs to blank lines and breaks to newlines", func(t *testing.T) {
		t.Parallel()

		got := markup.PlainText(`<div class="md"><p>first para</p><p>second<br/>line</p></div>`)
		assert.Equal(t, "first para\n\nsecond\nline", got)
	})

	t.Run("strips remaining markup and decodes entities", func(t *testing.T) {
		t.Parallel()

		got := markup.PlainText(`<p>a &amp; b <em>emphasis</em></p>`)
		assert.Equal(t, "a & b emphasis", got)
	})
}

func TestFindAll_Idempotent(t *testing.T) {
	t.Parallel()

	first := markup.FindAll(twoPostPage, markup.PostItem)
	second := markup.FindAll(twoPostPage, markup.PostItem)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].HTML(), second[i].HTML())
	}
}
