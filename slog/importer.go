package slog

import (
	"log/slog"
	"time"

	"github.com/jerradmgenson/auteur"
)

// Ensure LoggingImporter implements auteur.Importer.
var _ auteur.Importer = (*LoggingImporter)(nil)

// LoggingImporter wraps an Importer with import logging.
type LoggingImporter struct {
	next   auteur.Importer
	logger *slog.Logger
}

// NewLoggingImporter creates a new LoggingImporter.
func NewLoggingImporter(next auteur.Importer, logger *slog.Logger) *LoggingImporter {
	return &LoggingImporter{next: next, logger: logger}
}

// Import delegates to the wrapped importer and logs size and duration.
func (i *LoggingImporter) Import(html string) (string, error) {
	begin := time.Now()
	markdown, err := i.next.Import(html)
	if err != nil {
		i.logger.Error("import", "err", err)
		return "", err
	}
	i.logger.Info("import",
		"html_bytes", len(html),
		"markdown_bytes", len(markdown),
		"duration", time.Since(begin),
	)
	return markdown, nil
}
