package fs

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/jerradmgenson/auteur"
)

// Ensure ConfigService implements auteur.ConfigService at compile time.
var _ auteur.ConfigService = (*ConfigService)(nil)

// ConfigService reads the YAML site configuration file.
type ConfigService struct {
	files auteur.FileService
}

// NewConfigService creates a new ConfigService reading through files.
func NewConfigService(files auteur.FileService) *ConfigService {
	return &ConfigService{files: files}
}

// ReadConfig loads and validates the site configuration at path.
func (s *ConfigService) ReadConfig(path string) (*auteur.Config, error) {
	text, err := s.files.ReadText(path)
	if err != nil {
		return nil, err
	}

	var config auteur.Config
	if err := yaml.Unmarshal([]byte(text), &config); err != nil {
		return nil, fmt.Errorf("parse configuration %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
