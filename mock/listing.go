package mock

import "github.com/jerradmgenson/auteur"

var _ auteur.ListingService = (*ListingService)(nil)

// ListingService is a mock implementation of auteur.ListingService.
type ListingService struct {
	ReadListingFn func(path string) ([]*auteur.Article, error)
}

func (s *ListingService) ReadListing(path string) ([]*auteur.Article, error) {
	return s.ReadListingFn(path)
}
