// Package etree builds the site's RSS feed document.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/jerradmgenson/auteur"
)

// Ensure FeedBuilder implements auteur.FeedBuilder at compile time.
var _ auteur.FeedBuilder = (*FeedBuilder)(nil)

// FeedBuilder renders RSS 2.0 feed documents with etree.
type FeedBuilder struct{}

// NewFeedBuilder creates a new FeedBuilder.
func NewFeedBuilder() *FeedBuilder {
	return &FeedBuilder{}
}

// BuildFeed renders an RSS document for the given items. Items are written
// in the order given, which callers supply most-recent first.
func (b *FeedBuilder) BuildFeed(config *auteur.Config, items []auteur.FeedItem) (string, error) {
	if err := config.Validate(); err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(config.BlogTitle)
	channel.CreateElement("link").SetText(config.RootURL)
	channel.CreateElement("description").SetText(config.BlogSubtitle)
	if config.EmailAddress != "" {
		owner := config.EmailAddress + " (" + config.Owner + ")"
		channel.CreateElement("managingEditor").SetText(owner)
	}

	for _, item := range items {
		el := channel.CreateElement("item")
		el.CreateElement("title").SetText(item.Title)
		el.CreateElement("link").SetText(joinURL(config.RootURL, item.Link))
		el.CreateElement("guid").SetText(joinURL(config.RootURL, item.Link))
		el.CreateElement("description").SetText(item.Description)
		if item.PubDate != "" {
			el.CreateElement("pubDate").SetText(item.PubDate)
		}
	}

	doc.Indent(2)
	return doc.WriteToString()
}

// joinURL joins the site root URL and a site-relative target path.
func joinURL(root, target string) string {
	if root == "" {
		return target
	}
	return strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(target, "/")
}
