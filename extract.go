package auteur

import (
	"regexp"
	"strings"
)

// Recognized tag grammar. Extraction operates on these patterns only and
// assumes well-formed, template-generated HTML.
var (
	pubDateRe      = regexp.MustCompile(`<Published\s*=\s*.+?>`)
	figureRe       = regexp.MustCompile(`(?s)<figure>.+?</figure>`)
	h1Re           = regexp.MustCompile(`<h1>.+?</h1>`)
	previewTitleRe = regexp.MustCompile(`<h2 class="article_title">.+?</a>`)
	h2Re           = regexp.MustCompile(`<h2.+?</h2>`)
	anchorOpenRe   = regexp.MustCompile(`<a href=".+?">`)
	articleShellRe = regexp.MustCompile(`(?s)<article>.+?</section>`)
)

const (
	paragraphOpen  = "<p>"
	paragraphClose = "</p>"
)

// ExtractPubDate returns the first publication-date marker in html, tag
// included, of the form <Published = value>. The second return value is
// false when no marker exists.
func ExtractPubDate(html string) (string, bool) {
	marker := pubDateRe.FindString(html)
	return marker, marker != ""
}

// ExtractPreview derives an ArticlePreview from the article's loaded HTML
// body. The article itself is not modified.
//
// Intro text is reconstructed by splitting the body on <p> and collecting,
// in order, fragments whose trimmed text does not begin with a tag-open
// character, stopping after two. Fragments that trim to nothing do not
// qualify. The rejoined text is then truncated at the last </p> it
// contains, removing that tag and everything after it, even when that </p>
// is not the outermost one.
//
// Returns EMALFORMED if the reconstructed intro text has no closing
// paragraph tag at all, which is the degenerate result of a body with no
// qualifying paragraphs.
func ExtractPreview(article *Article) (*ArticlePreview, error) {
	collected := []string{""}
	for _, fragment := range strings.Split(article.HTML, paragraphOpen) {
		if len(collected) > 2 {
			break
		}
		trimmed := strings.TrimSpace(fragment)
		if trimmed != "" && trimmed[0] != '<' {
			collected = append(collected, fragment)
		}
	}

	introText := strings.Join(collected, paragraphOpen)
	tagIndex := strings.LastIndex(introText, paragraphClose)
	if tagIndex < 0 {
		return nil, Errorf(EMALFORMED, "no closing paragraph tag in %q", article.Source)
	}
	introText = introText[:tagIndex]

	// First photograph, verbatim. Absent is fine.
	firstPhoto := figureRe.FindString(article.HTML)

	return &ArticlePreview{
		Article:    *article,
		IntroText:  introText,
		FirstPhoto: firstPhoto,
	}, nil
}

// ExtractTitle locates the article's title heading and returns the plain
// title text together with the full heading match so callers can strip it
// from the body. Two encodings are recognized: a level-1 heading, then the
// preview-style title block. Returns ESTRUCTURE when neither is present.
func ExtractTitle(html string) (title, heading string, err error) {
	heading = h1Re.FindString(html)
	if heading == "" {
		heading = previewTitleRe.FindString(html)
	}
	if heading == "" {
		return "", "", Errorf(ESTRUCTURE, "no title heading present")
	}

	title = strings.ReplaceAll(heading, "<h1>", "")
	title = strings.ReplaceAll(title, "</h1>", "")
	title = strings.ReplaceAll(title, `<h2 class="article_title">`, "")
	title = anchorOpenRe.ReplaceAllString(title, "")
	title = strings.ReplaceAll(title, "</a>", "")
	return title, heading, nil
}

// PreprocessArticleHTML unwraps a previously rendered page back down to its
// article content: the first <article>...</section> block with the article
// and section shell tags removed. Used when re-rendering legacy posts.
// Returns ESTRUCTURE when the page has no article block.
func PreprocessArticleHTML(raw string) (string, error) {
	content := articleShellRe.FindString(raw)
	if content == "" {
		return "", Errorf(ESTRUCTURE, "no article content block present")
	}
	content = strings.ReplaceAll(content, "<article>", "")
	content = strings.ReplaceAll(content, "</section>", "")
	content = strings.ReplaceAll(content, `<section class="main_content">`, "")
	content = strings.ReplaceAll(content, `<section class="article_content">`, "")
	return content, nil
}
