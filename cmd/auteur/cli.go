package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jerradmgenson/auteur"
	"github.com/jerradmgenson/auteur/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Builder  *build.Builder
	Files    auteur.FileService
	Importer auteur.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	SiteDir  string `short:"C" default:"." help:"Site directory all paths are relative to"`
	Config   string `default:"configuration.yaml" help:"Site configuration file"`
	Listing  string `default:"listing.yaml" help:"Article listing file"`
	Template string `default:"template.html" help:"Page template file"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Build   BuildCmd   `cmd:"" help:"Render every post, the landing page, and the RSS feed"`
	Post    PostCmd    `cmd:"" help:"Render a single post"`
	Landing LandingCmd `cmd:"" help:"Render the landing page"`
	Feed    FeedCmd    `cmd:"" help:"Render the RSS feed"`
	Import  ImportCmd  `cmd:"" help:"Convert a legacy HTML post back to Markdown"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct{}

func (c *BuildCmd) Run(deps *Dependencies) error {
	result, err := deps.Builder.Site(deps.Ctx)
	if result != nil {
		printResult(deps.Stdout, result)
	}
	return err
}

// PostCmd is the "post" subcommand.
type PostCmd struct {
	Source string `arg:"" help:"Markdown source path of the post"`
}

func (c *PostCmd) Run(deps *Dependencies) error {
	result, err := deps.Builder.Post(deps.Ctx, c.Source)
	if result != nil {
		printResult(deps.Stdout, result)
	}
	return err
}

// LandingCmd is the "landing" subcommand.
type LandingCmd struct{}

func (c *LandingCmd) Run(deps *Dependencies) error {
	result, err := deps.Builder.LandingPage(deps.Ctx)
	if result != nil {
		printResult(deps.Stdout, result)
	}
	return err
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct{}

func (c *FeedCmd) Run(deps *Dependencies) error {
	result, err := deps.Builder.RSSFeed(deps.Ctx)
	if result != nil {
		printResult(deps.Stdout, result)
	}
	return err
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Page   string `arg:"" help:"Rendered HTML page to import"`
	Output string `help:"Markdown output path (defaults to the page path with a .md extension)"`
}

func (c *ImportCmd) Run(deps *Dependencies) error {
	page, err := deps.Files.ReadText(c.Page)
	if err != nil {
		return err
	}

	content, err := auteur.PreprocessArticleHTML(page)
	if err != nil {
		return err
	}

	markdown, err := deps.Importer.Import(content)
	if err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = strings.TrimSuffix(c.Page, filepath.Ext(c.Page)) + ".md"
	}
	if err := deps.Files.WriteText(output, markdown); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "imported %s -> %s\n", c.Page, output)
	return nil
}

func printResult(w io.Writer, result *build.Result) {
	fmt.Fprintf(w, "rendered %d, unchanged %d, failed %d\n",
		result.Rendered, result.Skipped, result.Failed)
}
