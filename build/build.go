// Package build orchestrates whole-site rendering: it loads the listing,
// configuration, and page template, converts article sources, and writes
// post pages, the landing page, and the RSS feed.
package build

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/jerradmgenson/auteur"
	"golang.org/x/sync/errgroup"
)

// Builder renders the complete site. All collaborators are required except
// Logger, which defaults to slog.Default, and Concurrency, which defaults
// to 4.
type Builder struct {
	Files     auteur.FileService
	Listings  auteur.ListingService
	Configs   auteur.ConfigService
	Converter auteur.Converter
	Feed      auteur.FeedBuilder
	Text      auteur.TextExtractor

	// Input locations.
	ListingPath  string
	ConfigPath   string
	TemplatePath string

	// Concurrent preview extraction limit.
	Concurrency int

	Logger *slog.Logger

	// Now is the render clock. Defaults to time.Now. Fixed in tests so
	// repeated renders are byte-identical.
	Now func() time.Time
}

// Result accumulates per-page outcomes of a build.
type Result struct {
	Rendered int
	Skipped  int
	Failed   int
}

// Site renders every listed post, the landing page, and the RSS feed.
// Per-article failures are logged and counted, never aborting the rest of
// the batch.
func (b *Builder) Site(ctx context.Context) (*Result, error) {
	config, listing, template, err := b.loadInputs()
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, entry := range listing {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := b.renderPost(entry, template, listing, config, result); err != nil {
			result.Failed++
			b.logger().Error("post", "source", entry.Source, "err", err)
		}
	}

	previews := b.extractPreviews(ctx, listing, result)

	landing := auteur.RenderLandingPage(previews, template, config, b.now())
	if err := b.writePage("index.html", landing, result); err != nil {
		return result, err
	}

	if config.RSSFeedPath != "" {
		feed, err := b.buildFeed(config, previews)
		if err != nil {
			return result, err
		}
		if err := b.writePage(config.RSSFeedPath, feed, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// Post renders the single post identified by its source path. Unlisted
// sources are rendered as the not-yet-listed newest post.
func (b *Builder) Post(ctx context.Context, source string) (*Result, error) {
	config, listing, template, err := b.loadInputs()
	if err != nil {
		return nil, err
	}

	entry := &auteur.Article{Source: source, Target: targetForSource(source)}
	if i, err := auteur.FindArticleIndex(entry, listing); err == nil {
		entry = listing[i]
	}

	result := &Result{}
	if err := b.renderPost(entry, template, listing, config, result); err != nil {
		return result, err
	}
	return result, nil
}

// LandingPage renders only the landing page.
func (b *Builder) LandingPage(ctx context.Context) (*Result, error) {
	config, listing, template, err := b.loadInputs()
	if err != nil {
		return nil, err
	}

	result := &Result{}
	previews := b.extractPreviews(ctx, listing, result)
	landing := auteur.RenderLandingPage(previews, template, config, b.now())
	if err := b.writePage("index.html", landing, result); err != nil {
		return result, err
	}
	return result, nil
}

// RSSFeed renders only the RSS feed.
func (b *Builder) RSSFeed(ctx context.Context) (*Result, error) {
	config, listing, _, err := b.loadInputs()
	if err != nil {
		return nil, err
	}
	if config.RSSFeedPath == "" {
		return nil, auteur.Errorf(auteur.EINVALID, "rss feed path not configured")
	}

	result := &Result{}
	previews := b.extractPreviews(ctx, listing, result)
	feed, err := b.buildFeed(config, previews)
	if err != nil {
		return result, err
	}
	if err := b.writePage(config.RSSFeedPath, feed, result); err != nil {
		return result, err
	}
	return result, nil
}

func (b *Builder) loadInputs() (*auteur.Config, []*auteur.Article, auteur.Template, error) {
	config, err := b.Configs.ReadConfig(b.ConfigPath)
	if err != nil {
		return nil, nil, "", err
	}
	listing, err := b.Listings.ReadListing(b.ListingPath)
	if err != nil {
		return nil, nil, "", err
	}
	template, err := b.Files.ReadText(b.TemplatePath)
	if err != nil {
		return nil, nil, "", err
	}
	return config, listing, auteur.Template(template), nil
}

// loadArticle returns a copy of entry with its Markdown source and
// converted HTML body populated. The listing entry is not modified.
func (b *Builder) loadArticle(entry *auteur.Article) (*auteur.Article, error) {
	markdown, err := b.Files.ReadText(entry.Source)
	if err != nil {
		return nil, err
	}
	html, err := b.Converter.Convert(markdown)
	if err != nil {
		return nil, err
	}
	loaded := *entry
	loaded.Markdown = markdown
	loaded.HTML = html
	return &loaded, nil
}

func (b *Builder) renderPost(entry *auteur.Article, template auteur.Template, listing []*auteur.Article, config *auteur.Config, result *Result) error {
	loaded, err := b.loadArticle(entry)
	if err != nil {
		return err
	}
	page, err := auteur.RenderPost(loaded, template, listing, config, b.now())
	if err != nil {
		return err
	}
	return b.writePage(loaded.Target, page, result)
}

// extractPreviews builds previews for the whole listing in reverse
// chronological order. Extraction per article is independent, so it fans
// out across a bounded worker group; failed articles are logged, counted,
// and dropped from the result.
func (b *Builder) extractPreviews(ctx context.Context, listing []*auteur.Article, result *Result) []*auteur.ArticlePreview {
	reversed := make([]*auteur.Article, len(listing))
	for i, entry := range listing {
		reversed[len(listing)-1-i] = entry
	}

	slots := make([]*auteur.ArticlePreview, len(reversed))
	errs := make([]error, len(reversed))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency())
	for i, entry := range reversed {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			loaded, err := b.loadArticle(entry)
			if err != nil {
				errs[i] = err
				return nil
			}
			slots[i], errs[i] = auteur.ExtractPreview(loaded)
			return nil
		})
	}
	_ = g.Wait()

	previews := make([]*auteur.ArticlePreview, 0, len(slots))
	for i, preview := range slots {
		if errs[i] != nil {
			result.Failed++
			b.logger().Error("preview", "source", reversed[i].Source, "err", errs[i])
			continue
		}
		previews = append(previews, preview)
	}
	return previews
}

func (b *Builder) buildFeed(config *auteur.Config, previews []*auteur.ArticlePreview) (string, error) {
	items := make([]auteur.FeedItem, 0, len(previews))
	for _, preview := range previews {
		description, err := b.Text.Text(preview.IntroText)
		if err != nil {
			return "", err
		}
		item := auteur.FeedItem{
			Title:       preview.Title,
			Link:        preview.Target,
			Description: description,
		}
		if preview.PubDate != nil {
			item.PubDate = preview.PubDate.Format(time.RFC1123Z)
		}
		items = append(items, item)
	}
	return b.Feed.BuildFeed(config, items)
}

// writePage writes content to path unless an identical page is already on
// disk, as decided by content hash.
func (b *Builder) writePage(path, content string, result *Result) error {
	if existing, err := b.Files.ReadText(path); err == nil {
		if xxhash.Sum64String(existing) == xxhash.Sum64String(content) {
			result.Skipped++
			b.logger().Info("unchanged", "path", path)
			return nil
		}
	}
	if err := b.Files.WriteText(path, content); err != nil {
		return err
	}
	result.Rendered++
	b.logger().Info("rendered", "path", path, "bytes", len(content))
	return nil
}

func (b *Builder) concurrency() int {
	if b.Concurrency > 0 {
		return b.Concurrency
	}
	return 4
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// targetForSource derives an output path for a source that is not yet in
// the listing: same relative path with an .html extension.
func targetForSource(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".html"
}
