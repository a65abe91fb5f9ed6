// Package gomarkdown converts Markdown article sources to HTML.
package gomarkdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/jerradmgenson/auteur"
)

// Ensure Converter implements auteur.Converter at compile time.
var _ auteur.Converter = (*Converter)(nil)

// Converter wraps gomarkdown to convert Markdown to article body HTML.
type Converter struct {
	extensions parser.Extensions
	flags      html.Flags
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		extensions: parser.CommonExtensions | parser.Footnotes,
		flags:      html.CommonFlags,
	}
}

// Convert transforms Markdown source text into HTML.
func (c *Converter) Convert(md string) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", auteur.Errorf(auteur.EINVALID, "empty Markdown input")
	}

	// The parser is stateful, so a fresh one is needed per conversion.
	p := parser.NewWithExtensions(c.extensions)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: c.flags})
	return string(markdown.Render(doc, renderer)), nil
}
