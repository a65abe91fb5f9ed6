package auteur

// FileService provides whole-file text I/O for templates, article sources,
// and rendered pages. Implementations surface not-found and permission
// failures unchanged.
type FileService interface {
	ReadText(path string) (string, error)
	WriteText(path string, content string) error
}
