package gomarkdown_test

import (
	"testing"

	"github.com/jerradmgenson/auteur"
	"github.com/jerradmgenson/auteur/gomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := gomarkdown.NewConverter()

		html, err := conv.Convert("# My Post\n\nFirst paragraph.\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<h1")
		assert.Contains(t, html, "My Post")
		assert.Contains(t, html, "<p>First paragraph.</p>")
	})

	t.Run("passes raw HTML blocks through", func(t *testing.T) {
		t.Parallel()

		conv := gomarkdown.NewConverter()

		html, err := conv.Convert("# Title\n\n<figure><img src=\"cat.jpg\"></figure>\n\nBody.\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<figure><img src=\"cat.jpg\"></figure>")
	})

	t.Run("is reusable across conversions", func(t *testing.T) {
		t.Parallel()

		conv := gomarkdown.NewConverter()

		first, err := conv.Convert("# One\n\nText.\n")
		require.NoError(t, err)
		second, err := conv.Convert("# One\n\nText.\n")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		conv := gomarkdown.NewConverter()

		_, err := conv.Convert("   \n")

		require.Error(t, err)
		assert.Equal(t, auteur.EINVALID, auteur.ErrorCode(err))
	})
}
