package fs

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/jerradmgenson/auteur"
)

// Ensure ListingService implements auteur.ListingService at compile time.
var _ auteur.ListingService = (*ListingService)(nil)

// ListingService reads the YAML listing file: an ordered sequence of
// article records, oldest first.
type ListingService struct {
	files auteur.FileService
}

// NewListingService creates a new ListingService reading through files.
func NewListingService(files auteur.FileService) *ListingService {
	return &ListingService{files: files}
}

// listingEntry is the on-disk form of one listing record. Publication
// dates are stored as YYYY-MM-DD and may be omitted for legacy posts.
type listingEntry struct {
	Source  string `yaml:"source"`
	Target  string `yaml:"target"`
	PubDate string `yaml:"pub_date,omitempty"`
	Title   string `yaml:"title"`
}

const listingDateLayout = "2006-01-02"

// ReadListing loads the listing file at path. Listing order is preserved.
func (s *ListingService) ReadListing(path string) ([]*auteur.Article, error) {
	text, err := s.files.ReadText(path)
	if err != nil {
		return nil, err
	}

	var entries []listingEntry
	if err := yaml.Unmarshal([]byte(text), &entries); err != nil {
		return nil, fmt.Errorf("parse listing %q: %w", path, err)
	}

	listing := make([]*auteur.Article, 0, len(entries))
	for _, entry := range entries {
		article := &auteur.Article{
			Source: entry.Source,
			Target: entry.Target,
			Title:  entry.Title,
		}
		if entry.PubDate != "" {
			pubDate, err := time.Parse(listingDateLayout, entry.PubDate)
			if err != nil {
				return nil, fmt.Errorf("parse listing %q: entry %q: %w", path, entry.Source, err)
			}
			article.PubDate = &pubDate
		}
		if err := article.Validate(); err != nil {
			return nil, err
		}
		listing = append(listing, article)
	}
	return listing, nil
}
