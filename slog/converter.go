// Package slog provides logging decorators for auteur interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/jerradmgenson/auteur"
)

// Ensure LoggingConverter implements auteur.Converter.
var _ auteur.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with conversion logging.
type LoggingConverter struct {
	next   auteur.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next auteur.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs size and duration.
func (c *LoggingConverter) Convert(markdown string) (string, error) {
	begin := time.Now()
	html, err := c.next.Convert(markdown)
	if err != nil {
		c.logger.Error("convert", "err", err)
		return "", err
	}
	c.logger.Info("convert",
		"markdown_bytes", len(markdown),
		"html_bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}
