// Package goquery extracts plain text from HTML fragments.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jerradmgenson/auteur"
)

// Ensure TextExtractor implements auteur.TextExtractor at compile time.
var _ auteur.TextExtractor = (*TextExtractor)(nil)

// TextExtractor strips markup from an HTML fragment, yielding the plain
// text used for RSS item descriptions.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Text returns the whitespace-normalized text content of the fragment.
func (e *TextExtractor) Text(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", auteur.Errorf(auteur.EINVALID, "failed to parse HTML: %v", err)
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
