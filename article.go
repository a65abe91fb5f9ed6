package auteur

import "time"

// humanDateLayout renders publication dates in long-month form,
// e.g. "August 31, 2026".
const humanDateLayout = "January 02, 2006"

// Article represents one blog post's source/output/metadata record.
type Article struct {
	// Path of the original Markdown source.
	Source string

	// Path of the rendered output; hyperlinks are built from it.
	Target string

	// Publication date. Nil for legacy or draft posts.
	PubDate *time.Time

	// Raw HTML of the article body, post-Markdown-conversion, pre-template.
	HTML string

	// Original Markdown source text, retained for traceability.
	Markdown string

	// Plain-text article title. Populated by the listing or by title
	// extraction; render functions never write it back.
	Title string
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Source == "" {
		return Errorf(EINVALID, "article source required")
	}
	if a.Target == "" {
		return Errorf(EINVALID, "article target required")
	}
	return nil
}

// HumanPubDate returns the publication date in long-month form, or the
// empty string when the article has no publication date.
func (a *Article) HumanPubDate() string {
	if a.PubDate == nil {
		return ""
	}
	return a.PubDate.Format(humanDateLayout)
}

// ArticlePreview is a display-only summary of an article for the landing
// page: the article's identity fields plus derived intro text and photo.
// Constructed once per render pass and discarded after rendering.
type ArticlePreview struct {
	Article

	// First one-two paragraphs of body text, truncated at the boundary of
	// the last closing paragraph tag.
	IntroText string

	// The first <figure>...</figure> block verbatim, or empty when the
	// article has no photo.
	FirstPhoto string
}

// FindArticleIndex returns the position of article in listing. Identity is
// the article's source path; no other fields are compared.
// Returns ENOTFOUND if the article is not listed, which is the expected
// case for a brand-new post.
func FindArticleIndex(article *Article, listing []*Article) (int, error) {
	for i, entry := range listing {
		if entry.Source == article.Source {
			return i, nil
		}
	}
	return 0, Errorf(ENOTFOUND, "article %q not in listing", article.Source)
}

// ListingService reads the ordered registry of all known articles.
// Listing order is significant: it defines chronological previous/next
// relationships, oldest first.
type ListingService interface {
	ReadListing(path string) ([]*Article, error)
}
