package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/jerradmgenson/auteur/build"
	"github.com/jerradmgenson/auteur/etree"
	"github.com/jerradmgenson/auteur/fs"
	"github.com/jerradmgenson/auteur/gomarkdown"
	"github.com/jerradmgenson/auteur/goquery"
	"github.com/jerradmgenson/auteur/htmltomarkdown"
	auteurslog "github.com/jerradmgenson/auteur/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("auteur"),
		kong.Description("Static blog generator."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'auteur --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if !cli.Verbose {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	files := fs.NewFileService(cli.SiteDir)
	deps.Files = files
	deps.Importer = auteurslog.NewLoggingImporter(htmltomarkdown.NewImporter(), logger)
	deps.Builder = &build.Builder{
		Files:        files,
		Listings:     fs.NewListingService(files),
		Configs:      fs.NewConfigService(files),
		Converter:    auteurslog.NewLoggingConverter(gomarkdown.NewConverter(), logger),
		Feed:         etree.NewFeedBuilder(),
		Text:         goquery.NewTextExtractor(),
		ListingPath:  cli.Listing,
		ConfigPath:   cli.Config,
		TemplatePath: cli.Template,
		Logger:       logger,
	}

	return kongCtx.Run(deps)
}
