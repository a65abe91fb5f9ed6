package auteur

import (
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// RenderPreview renders an ArticlePreview into its landing-page section.
// The body always ends in a closing paragraph tag, restoring the one the
// intro-text extraction stripped.
func RenderPreview(preview *ArticlePreview) string {
	titleHTML := articleTitleTemplate.Render(map[string]string{
		"article_title":    preview.Title,
		"article_subtitle": preview.HumanPubDate(),
		"article_path":     preview.Target,
	})

	continueLink := continueReadingTemplate.Render(map[string]string{
		"article_path": preview.Target,
	})
	content := preview.IntroText + " " + continueLink + "</p>"

	return articlePreviewTemplate.Render(map[string]string{
		"article_title":   titleHTML,
		"article_photo":   preview.FirstPhoto,
		"article_content": content,
	})
}

// RenderPost rewrites a full article into its final post page: the original
// heading and publication-date marker are stripped from the body and the
// title is reinserted in templated form, with previous-post navigation
// computed from listing order. The input article is not modified.
//
// Returns ESTRUCTURE when the article has no recognizable title heading.
func RenderPost(article *Article, pageTemplate Template, listing []*Article, config *Config, now time.Time) (string, error) {
	title, heading, err := ExtractTitle(article.HTML)
	if err != nil {
		return "", err
	}

	pubDate, hasPubDate := ExtractPubDate(article.HTML)

	// Post pages do not self-link their own title.
	titleHTML := articleTitleTemplate.Render(map[string]string{
		"article_title":    title,
		"article_subtitle": article.HumanPubDate(),
		"article_path":     "",
	})

	// Remove the heading from the body, then reinsert it as the templated
	// title. The broad h2 removal handles preview-style headings; removing
	// the literal match handles the h1 case as well.
	body := h2Re.ReplaceAllString(article.HTML, "")
	body = strings.ReplaceAll(body, heading, "")
	body = strings.TrimSpace(body)

	if hasPubDate {
		body = strings.ReplaceAll(body, pubDate, "")
	}

	content := titleHTML + "\n" + body

	// The line that held the heading may now be blank; drop it if so.
	lines := strings.Split(content, "\n")
	if !startsWithNonSpace(lines[0]) {
		content = strings.Join(lines[1:], "\n")
	}

	contentHTML := articleContentTemplate.Render(map[string]string{
		"article_content": content,
	})

	navBar := renderNavBar(previousArticleLink(article, listing))

	return renderPage(pageTemplate, config, pageValues{
		navBar:       navBar,
		title:        title,
		contentHTML:  contentHTML,
		homePageLink: "../",
		now:          now,
	}), nil
}

// RenderLandingPage folds article previews, already ordered most-recent
// first, into the site's aggregate landing page.
func RenderLandingPage(previews []*ArticlePreview, pageTemplate Template, config *Config, now time.Time) string {
	var aggregate strings.Builder
	for _, preview := range previews {
		aggregate.WriteString(RenderPreview(preview))
		aggregate.WriteString("\n\n")
	}

	return renderPage(pageTemplate, config, pageValues{
		navBar:       "",
		title:        config.BlogTitle,
		contentHTML:  aggregate.String(),
		homePageLink: "",
		now:          now,
	})
}

// previousArticleLink resolves the previous-post navigation target from
// listing order. A post missing from the listing is the not-yet-listed
// newest post, so its previous post is the listing's last entry.
func previousArticleLink(article *Article, listing []*Article) string {
	i, err := FindArticleIndex(article, listing)
	if err != nil {
		if len(listing) == 0 {
			return ""
		}
		return path.Join("..", listing[len(listing)-1].Target)
	}
	if i == 0 {
		// The first post has no previous article.
		return ""
	}
	return path.Join("..", listing[i-1].Target)
}

// renderNavBar renders the post nav bar. With no previous article the
// Previous anchor is removed entirely, leaving only the Home link.
func renderNavBar(previousLink string) string {
	navBar := navBarTemplate.Render(map[string]string{
		"previous_article": previousLink,
	})
	if previousLink == "" {
		navBar = strings.ReplaceAll(navBar, `<a href="">Previous</a>`, "")
	}
	return navBar
}

type pageValues struct {
	navBar       string
	title        string
	contentHTML  string
	homePageLink string
	now          time.Time
}

// renderPage applies the page template shared by posts and the landing page.
func renderPage(pageTemplate Template, config *Config, v pageValues) string {
	return pageTemplate.Render(map[string]string{
		"nav_bar":         v.navBar,
		"article_title":   v.title,
		"article_content": v.contentHTML,
		"last_updated":    "Last updated: " + v.now.Format(humanDateLayout),
		"current_year":    v.now.Format("2006"),
		"blog_title":      config.BlogTitle,
		"blog_subtitle":   config.BlogSubtitle,
		"owner":           config.Owner,
		"email_address":   config.EmailAddress,
		"rss_feed_path":   config.RSSFeedPath,
		"style_sheet":     config.StyleSheet,
		"root_url":        config.RootURL,
		"home_page_link":  v.homePageLink,
	})
}

func startsWithNonSpace(line string) bool {
	r, size := utf8.DecodeRuneInString(line)
	return size > 0 && !unicode.IsSpace(r)
}
