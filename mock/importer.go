package mock

import "github.com/jerradmgenson/auteur"

var _ auteur.Importer = (*Importer)(nil)

// Importer is a mock implementation of auteur.Importer.
type Importer struct {
	ImportFn func(html string) (string, error)
}

func (i *Importer) Import(html string) (string, error) {
	return i.ImportFn(html)
}
