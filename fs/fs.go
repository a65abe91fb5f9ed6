// Package fs provides file-based collaborators: whole-file text I/O, the
// YAML listing registry, and the YAML site configuration.
package fs

import (
	"os"
	"path/filepath"

	"github.com/jerradmgenson/auteur"
)

// Ensure FileService implements auteur.FileService at compile time.
var _ auteur.FileService = (*FileService)(nil)

// FileService reads and writes whole text files relative to a base
// directory. An empty base directory means paths are used as given.
type FileService struct {
	baseDir string
}

// NewFileService creates a new FileService rooted at baseDir.
func NewFileService(baseDir string) *FileService {
	return &FileService{baseDir: baseDir}
}

// ReadText returns the complete contents of the file at path.
func (s *FileService) ReadText(path string) (string, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes content to path, creating parent directories as needed.
func (s *FileService) WriteText(path string, content string) error {
	full := s.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, []byte(content), 0644)
}

func (s *FileService) resolve(path string) string {
	if s.baseDir == "" {
		return path
	}
	return filepath.Join(s.baseDir, path)
}
