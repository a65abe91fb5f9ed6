package auteur

// FeedItem is one RSS feed entry derived from an article preview.
type FeedItem struct {
	Title       string
	Link        string
	Description string
	PubDate     string
}

// FeedBuilder builds the site's RSS feed document.
type FeedBuilder interface {
	// BuildFeed renders an RSS document for the given items, which are
	// expected in most-recent-first order.
	BuildFeed(config *Config, items []FeedItem) (string, error)
}

// TextExtractor extracts plain text from an HTML fragment, used to produce
// tag-free feed descriptions.
type TextExtractor interface {
	Text(html string) (string, error)
}
