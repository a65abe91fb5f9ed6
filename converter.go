package auteur

// Converter converts Markdown article sources to HTML.
type Converter interface {
	// Convert transforms Markdown source text into the article body HTML
	// that the extraction and render routines operate on.
	Convert(markdown string) (string, error)
}

// Importer converts a legacy HTML post back into a Markdown source,
// recovering an editable source for posts that predate Markdown authoring.
type Importer interface {
	Import(html string) (string, error)
}
