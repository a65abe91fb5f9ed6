package mock

import "github.com/jerradmgenson/auteur"

var _ auteur.FileService = (*FileService)(nil)

// FileService is a mock implementation of auteur.FileService.
type FileService struct {
	ReadTextFn  func(path string) (string, error)
	WriteTextFn func(path string, content string) error
}

func (s *FileService) ReadText(path string) (string, error) {
	return s.ReadTextFn(path)
}

func (s *FileService) WriteText(path string, content string) error {
	return s.WriteTextFn(path, content)
}
