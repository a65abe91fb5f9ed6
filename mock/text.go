package mock

import "github.com/jerradmgenson/auteur"

var _ auteur.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of auteur.TextExtractor.
type TextExtractor struct {
	TextFn func(html string) (string, error)
}

func (e *TextExtractor) Text(html string) (string, error) {
	return e.TextFn(html)
}
