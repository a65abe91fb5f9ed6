package mock

import "github.com/jerradmgenson/auteur"

var _ auteur.ConfigService = (*ConfigService)(nil)

// ConfigService is a mock implementation of auteur.ConfigService.
type ConfigService struct {
	ReadConfigFn func(path string) (*auteur.Config, error)
}

func (s *ConfigService) ReadConfig(path string) (*auteur.Config, error) {
	return s.ReadConfigFn(path)
}
