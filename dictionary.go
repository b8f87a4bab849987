package loon

import (
	"errors"
	"sort"
)

// Dictionary is the queryable result of a build: one merged value tree per
// locale plus the resolution policy it was built with. It is read only for
// its whole lifetime; reconfiguration produces a new Dictionary.
type Dictionary struct {
	trees          map[string]*Value
	locales        []string
	defaultLocale  string
	fallbackLocale string
	parentLocales  bool
}

func newDictionary(cfg *Config, trees map[string]*Value) *Dictionary {
	if trees == nil {
		trees = make(map[string]*Value)
	}

	locales := make([]string, 0, len(trees))
	for locale := range trees {
		locales = append(locales, locale)
	}
	// make locales deterministic
	sort.Strings(locales)

	dict := &Dictionary{
		trees:   trees,
		locales: locales,
	}
	if cfg != nil {
		dict.defaultLocale = cfg.defaultLocale
		dict.fallbackLocale = cfg.fallbackLocale
		dict.parentLocales = cfg.parentLocales
	}
	return dict
}

// Lookup descends the tree for the given locale only. It returns the
// template at the path, and ok=false when the path misses or lands on a
// container rather than a template.
func (d *Dictionary) Lookup(locale string, segments []string) (string, bool) {
	if d == nil {
		return "", false
	}

	root, ok := d.trees[locale]
	if !ok {
		return "", false
	}

	value, ok := root.GetPath(segments)
	if !ok {
		return "", false
	}
	return value.Template()
}

// Locales returns a sorted copy of all locale codes known to the dictionary.
func (d *Dictionary) Locales() []string {
	if d == nil || len(d.locales) == 0 {
		return nil
	}
	out := make([]string, len(d.locales))
	copy(out, d.locales)
	return out
}

// Keys returns the sorted dotted paths of every template in the locale.
func (d *Dictionary) Keys(locale string) []string {
	if d == nil {
		return nil
	}
	root, ok := d.trees[locale]
	if !ok {
		return nil
	}

	var keys []string
	collectKeys(root, "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(v *Value, prefix string, out *[]string) {
	if v == nil {
		return
	}
	if v.IsLeaf() {
		if prefix != "" {
			*out = append(*out, prefix)
		}
		return
	}
	for name, child := range v.children {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		collectKeys(child, key, out)
	}
}

// Translate resolves key through the locale fallback chain and interpolates
// the supplied variables into the matched template.
func (d *Dictionary) Translate(key string, opts ...TranslateOption) (string, error) {
	o := newTranslateOpts(opts)

	lookupKey := key
	if o.count != nil {
		lookupKey = key + "." + countCategory(*o.count)
	}

	template, err := d.resolve(lookupKey, o.locale)
	if err != nil && o.defaultKey != "" && isResolveMiss(err) {
		template, err = d.resolve(o.defaultKey, o.locale)
	}
	if err != nil {
		return "", err
	}

	return Interpolate(template, o.vars)
}

func isResolveMiss(err error) bool {
	var notFound *KeyNotFoundError
	return errors.As(err, &notFound)
}

// countCategory maps a count onto Rails style key suffixes.
func countCategory(count int) string {
	switch count {
	case 0:
		return "zero"
	case 1:
		return "one"
	default:
		return "other"
	}
}
