package pages

// DefaultAppName is used when no application name is configured.
const DefaultAppName = "mobilegate"

// PageOption configures a page.
type PageOption func(*pageConfig)

type pageConfig struct {
	appName    string
	title      string
	stylesheet string
}

func newPageConfig(defaultTitle string, opts []PageOption) pageConfig {
	cfg := pageConfig{appName: DefaultAppName}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.title == "" {
		cfg.title = defaultTitle + " | " + cfg.appName
	}
	return cfg
}

// WithAppName sets the application name shown on the page and in its title.
// Empty names are ignored.
func WithAppName(name string) PageOption {
	return func(c *pageConfig) {
		if name != "" {
			c.appName = name
		}
	}
}

// WithTitle overrides the document title.
func WithTitle(title string) PageOption {
	return func(c *pageConfig) {
		c.title = title
	}
}

// WithStylesheet links a stylesheet from the document head.
func WithStylesheet(href string) PageOption {
	return func(c *pageConfig) {
		c.stylesheet = href
	}
}
