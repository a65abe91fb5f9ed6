package mock

import "github.com/jerradmgenson/auteur"

var _ auteur.FeedBuilder = (*FeedBuilder)(nil)

// FeedBuilder is a mock implementation of auteur.FeedBuilder.
type FeedBuilder struct {
	BuildFeedFn func(config *auteur.Config, items []auteur.FeedItem) (string, error)
}

func (b *FeedBuilder) BuildFeed(config *auteur.Config, items []auteur.FeedItem) (string, error) {
	return b.BuildFeedFn(config, items)
}
