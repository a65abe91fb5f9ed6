package auteur

// Config holds the site-wide configuration threaded explicitly into render
// functions.
type Config struct {
	BlogTitle    string `yaml:"blog_title"`
	BlogSubtitle string `yaml:"blog_subtitle"`
	Owner        string `yaml:"owner"`
	EmailAddress string `yaml:"email_address"`
	RSSFeedPath  string `yaml:"rss_feed_path"`
	StyleSheet   string `yaml:"style_sheet"`
	RootURL      string `yaml:"root_url"`
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.BlogTitle == "" {
		return Errorf(EINVALID, "blog title required")
	}
	if c.Owner == "" {
		return Errorf(EINVALID, "owner required")
	}
	return nil
}

// ConfigService reads the site configuration.
type ConfigService interface {
	ReadConfig(path string) (*Config, error)
}
