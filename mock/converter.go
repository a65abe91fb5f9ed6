package mock

import "github.com/jerradmgenson/auteur"

var _ auteur.Converter = (*Converter)(nil)

// Converter is a mock implementation of auteur.Converter.
type Converter struct {
	ConvertFn func(markdown string) (string, error)
}

func (c *Converter) Convert(markdown string) (string, error) {
	return c.ConvertFn(markdown)
}
