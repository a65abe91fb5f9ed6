package htmltomarkdown_test

import (
	"testing"

	"github.com/jerradmgenson/auteur"
	"github.com/jerradmgenson/auteur/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("recovers headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		imp := htmltomarkdown.NewImporter()

		md, err := imp.Import("<h1>Legacy Title</h1><p>First paragraph.</p>")

		require.NoError(t, err)
		assert.Contains(t, md, "# Legacy Title")
		assert.Contains(t, md, "First paragraph.")
	})

	t.Run("recovers hyperlinks", func(t *testing.T) {
		t.Parallel()

		imp := htmltomarkdown.NewImporter()

		md, err := imp.Import(`<p>See <a href="https://example.com">the site</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[the site](https://example.com)")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		imp := htmltomarkdown.NewImporter()

		_, err := imp.Import("  ")

		require.Error(t, err)
		assert.Equal(t, auteur.EINVALID, auteur.ErrorCode(err))
	})
}
