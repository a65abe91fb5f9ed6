package slog_test

import (
	"bytes"
	"errors"
	"testing"

	"log/slog"

	"github.com/jerradmgenson/auteur/mock"
	auteurslog "github.com/jerradmgenson/auteur/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(markdown string) (string, error) {
				return "<p>converted</p>", nil
			},
		}

		conv := auteurslog.NewLoggingConverter(inner, logger)
		html, err := conv.Convert("# source")

		require.NoError(t, err)
		assert.Equal(t, "<p>converted</p>", html)
		output := buf.String()
		assert.Contains(t, output, "convert")
		assert.Contains(t, output, "markdown_bytes=8")
		assert.Contains(t, output, "html_bytes=16")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(markdown string) (string, error) {
				return "", errors.New("parse failure")
			},
		}

		conv := auteurslog.NewLoggingConverter(inner, logger)
		_, err := conv.Convert("# source")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"parse failure\"")
	})
}
