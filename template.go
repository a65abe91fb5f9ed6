package auteur

import "strings"

// Template is a string template with {name} placeholders. Placeholders
// without a matching value are left in place.
type Template string

// Render substitutes every {name} placeholder with its value.
func (t Template) Render(values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for name, value := range values {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(string(t))
}

// Built-in fragment templates. The page template itself is loaded from
// storage; these smaller fragments are part of the generated markup
// contract and never change per-site.
const (
	// articleTitleTemplate renders an article's title block.
	articleTitleTemplate Template = `<h2 class="article_title"><a href="{article_path}">{article_title}</a><p class="article_subtitle">{article_subtitle}</p></h2>`

	// continueReadingTemplate renders the "Continue reading..." hyperlink.
	continueReadingTemplate Template = `<a href="{article_path}">Continue reading...</a>`

	// articlePreviewTemplate renders one landing-page preview section.
	articlePreviewTemplate Template = "<section class=\"article_preview\">\n{article_title}\n{article_photo}\n{article_content}\n</section>\n"

	// articleContentTemplate wraps a post's full content.
	articleContentTemplate Template = "<section class=\"article_content\">\n{article_content}\n</section>"

	// navBarTemplate renders the post navigation bar.
	navBarTemplate Template = `<a href="{previous_article}">Previous</a> <a href="../">Home</a>`
)
