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

func TestLoggingImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(html string) (string, error) {
				return "# recovered", nil
			},
		}

		imp := auteurslog.NewLoggingImporter(inner, logger)
		md, err := imp.Import("<h1>recovered</h1>")

		require.NoError(t, err)
		assert.Equal(t, "# recovered", md)
		assert.Contains(t, buf.String(), "import")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(html string) (string, error) {
				return "", errors.New("bad html")
			},
		}

		imp := auteurslog.NewLoggingImporter(inner, logger)
		_, err := imp.Import("<h1>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"bad html\"")
	})
}
