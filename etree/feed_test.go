package etree_test

import (
	"strings"
	"testing"

	"github.com/jerradmgenson/auteur"
	"github.com/jerradmgenson/auteur/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedConfig() *auteur.Config {
	return &auteur.Config{
		BlogTitle:    "Recursive Descent",
		BlogSubtitle: "Notes on software",
		Owner:        "Ada Example",
		EmailAddress: "ada@example.com",
		RSSFeedPath:  "feed.xml",
		RootURL:      "https://example.com",
	}
}

func TestFeedBuilder_BuildFeed(t *testing.T) {
	t.Parallel()

	t.Run("renders channel metadata", func(t *testing.T) {
		t.Parallel()

		feed, err := etree.NewFeedBuilder().BuildFeed(feedConfig(), nil)

		require.NoError(t, err)
		assert.Contains(t, feed, `<rss version="2.0">`)
		assert.Contains(t, feed, "<title>Recursive Descent</title>")
		assert.Contains(t, feed, "<link>https://example.com</link>")
		assert.Contains(t, feed, "<description>Notes on software</description>")
		assert.Contains(t, feed, "<managingEditor>ada@example.com (Ada Example)</managingEditor>")
	})

	t.Run("renders items in the order given", func(t *testing.T) {
		t.Parallel()

		items := []auteur.FeedItem{
			{Title: "Post B", Link: "posts/b.html", Description: "B intro.", PubDate: "Sat, 02 Apr 2016 00:00:00 +0000"},
			{Title: "Post A", Link: "posts/a.html", Description: "A intro."},
		}

		feed, err := etree.NewFeedBuilder().BuildFeed(feedConfig(), items)

		require.NoError(t, err)
		assert.Contains(t, feed, "<title>Post B</title>")
		assert.Contains(t, feed, "<link>https://example.com/posts/b.html</link>")
		assert.Contains(t, feed, "<pubDate>Sat, 02 Apr 2016 00:00:00 +0000</pubDate>")
		assert.Less(t, strings.Index(feed, "Post B"), strings.Index(feed, "Post A"))
	})

	t.Run("legacy items omit the pubDate element", func(t *testing.T) {
		t.Parallel()

		items := []auteur.FeedItem{{Title: "Legacy", Link: "posts/legacy.html", Description: "Old."}}

		feed, err := etree.NewFeedBuilder().BuildFeed(feedConfig(), items)

		require.NoError(t, err)
		assert.NotContains(t, feed, "<pubDate>")
	})

	t.Run("escapes markup in descriptions", func(t *testing.T) {
		t.Parallel()

		items := []auteur.FeedItem{{Title: "Post", Link: "p.html", Description: "uses <p> & more"}}

		feed, err := etree.NewFeedBuilder().BuildFeed(feedConfig(), items)

		require.NoError(t, err)
		assert.Contains(t, feed, "uses &lt;p&gt; &amp; more")
	})

	t.Run("invalid configuration is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewFeedBuilder().BuildFeed(&auteur.Config{}, nil)

		require.Error(t, err)
		assert.Equal(t, auteur.EINVALID, auteur.ErrorCode(err))
	})
}
