package loon

import "errors"

// DefaultLocale is assumed when no default locale is configured.
const DefaultLocale = "en"

// DefaultPathPattern is where DefaultConfig looks for translation files.
const DefaultPathPattern = "config/locales/*.*"

// Config captures source selection and resolution policy for one build. It
// is immutable once constructed; Build derives a Dictionary from it without
// mutating it.
type Config struct {
	defaultLocale  string
	fallbackLocale string
	parentLocales  bool
	patterns       []string
	paths          []localizedPath
	sources        []Source
	loader         Loader
}

type localizedPath struct {
	locale string
	path   string
}

// Option mutates Config during construction.
type Option func(*Config)

// NewConfig builds Config via supplied options.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{defaultLocale: DefaultLocale}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

// DefaultConfig mirrors the zero-setup behavior of the global facade: load
// whatever sits under config/locales.
func DefaultConfig() *Config {
	return NewConfig(WithPathPattern(DefaultPathPattern))
}

// WithDefaultLocale sets the locale tried when no explicit locale is
// requested, and the locale hint-less sources are assigned to first.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) {
		if locale == "" {
			return
		}
		c.defaultLocale = locale
	}
}

// WithFallbackLocale sets the last locale tried during resolution.
func WithFallbackLocale(locale string) Option {
	return func(c *Config) {
		c.fallbackLocale = locale
	}
}

// WithParentLocales also tries the parents of the requested locale during
// resolution, so a miss on "pt-BR" falls through to "pt" before the default
// locale is consulted.
func WithParentLocales() Option {
	return func(c *Config) {
		c.parentLocales = true
	}
}

// WithPathPattern adds a glob pattern of translation files to load. The
// locale of each match is derived from its file stem, e.g. en.yml.
func WithPathPattern(pattern string) Option {
	return func(c *Config) {
		if pattern == "" {
			return
		}
		c.patterns = append(c.patterns, pattern)
	}
}

// WithLocalizedPath adds a single translation file bound to an explicit
// locale, regardless of its file name.
func WithLocalizedPath(locale, path string) Option {
	return func(c *Config) {
		if path == "" {
			return
		}
		c.paths = append(c.paths, localizedPath{locale: locale, path: path})
	}
}

// WithSource adds an in-memory source tree. An empty locale leaves the
// source hint-less, subject to the builder's assignment policy.
func WithSource(locale string, tree *Value) Option {
	return func(c *Config) {
		if tree == nil {
			return
		}
		c.sources = append(c.sources, Source{ID: "inline", Locale: locale, Tree: tree})
	}
}

// WithLoader sets the custom adapter whose sources load after file sources,
// replacing any loader set earlier in the option list.
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.loader = loader
	}
}

// Build loads every configured source and merges them into a Dictionary.
// Load order, and therefore merge precedence, is: localized paths, path
// pattern matches, custom loader sources, in-memory sources.
func (c *Config) Build() (*Dictionary, error) {
	if c == nil {
		return nil, errors.New("loon: nil config")
	}

	var sources []Source

	if len(c.paths) > 0 || len(c.patterns) > 0 {
		fl := NewFileLoader()
		for _, lp := range c.paths {
			fl.AddLocalizedPath(lp.locale, lp.path)
		}
		for _, pattern := range c.patterns {
			fl.AddPattern(pattern)
		}
		loaded, err := fl.Load()
		if err != nil {
			return nil, err
		}
		sources = append(sources, loaded...)
	}

	if c.loader != nil {
		loaded, err := c.loader.Load()
		if err != nil {
			return nil, err
		}
		sources = append(sources, loaded...)
	}

	sources = append(sources, c.sources...)

	return Build(c, sources)
}
