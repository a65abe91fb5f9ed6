package fs_test

import (
	"testing"

	"github.com/jerradmgenson/auteur"
	"github.com/jerradmgenson/auteur/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigService_ReadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads all site fields", func(t *testing.T) {
		t.Parallel()

		files := fs.NewFileService(t.TempDir())
		require.NoError(t, files.WriteText("configuration.yaml", `
blog_title: Recursive Descent
blog_subtitle: Notes on software
owner: Ada Example
email_address: ada@example.com
rss_feed_path: feed.xml
style_sheet: styles.css
root_url: https://example.com
`))

		config, err := fs.NewConfigService(files).ReadConfig("configuration.yaml")

		require.NoError(t, err)
		assert.Equal(t, "Recursive Descent", config.BlogTitle)
		assert.Equal(t, "Notes on software", config.BlogSubtitle)
		assert.Equal(t, "Ada Example", config.Owner)
		assert.Equal(t, "ada@example.com", config.EmailAddress)
		assert.Equal(t, "feed.xml", config.RSSFeedPath)
		assert.Equal(t, "styles.css", config.StyleSheet)
		assert.Equal(t, "https://example.com", config.RootURL)
	})

	t.Run("missing blog title fails validation", func(t *testing.T) {
		t.Parallel()

		files := fs.NewFileService(t.TempDir())
		require.NoError(t, files.WriteText("configuration.yaml", "owner: Ada Example\n"))

		_, err := fs.NewConfigService(files).ReadConfig("configuration.yaml")

		require.Error(t, err)
		assert.Equal(t, auteur.EINVALID, auteur.ErrorCode(err))
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()

		files := fs.NewFileService(t.TempDir())
		require.NoError(t, files.WriteText("configuration.yaml", "blog_title: [unclosed\n"))

		_, err := fs.NewConfigService(files).ReadConfig("configuration.yaml")

		assert.Error(t, err)
	})
}
