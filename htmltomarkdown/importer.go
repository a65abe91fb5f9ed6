// Package htmltomarkdown converts legacy HTML posts into Markdown sources.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/jerradmgenson/auteur"
)

// Ensure Importer implements auteur.Importer at compile time.
var _ auteur.Importer = (*Importer)(nil)

// Importer wraps html-to-markdown to recover Markdown sources from posts
// that predate Markdown authoring.
type Importer struct {
	conv *converter.Converter
}

// NewImporter creates a new Importer.
func NewImporter() *Importer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Importer{conv: conv}
}

// Import transforms a legacy HTML post body into Markdown.
func (i *Importer) Import(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", auteur.Errorf(auteur.EINVALID, "empty HTML input")
	}

	result, err := i.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return result, nil
}
