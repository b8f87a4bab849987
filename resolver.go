package loon

// resolve walks the locale candidate chain for key and returns the first
// matching template. Explicit locale requests never skip ahead in the chain,
// so the order reported on a miss is the order actually attempted.
func (d *Dictionary) resolve(key, requested string) (string, error) {
	segments, err := SplitKey(key)
	if err != nil {
		return "", err
	}

	chain := d.localeChain(requested)
	for _, locale := range chain {
		if template, ok := d.Lookup(locale, segments); ok {
			return template, nil
		}
	}

	return "", &KeyNotFoundError{Key: key, LocalesTried: chain}
}

// localeChain builds the deduplicated candidate order: the requested locale
// (plus its parents when enabled), then the default locale, then the
// fallback locale.
func (d *Dictionary) localeChain(requested string) []string {
	seen := make(map[string]struct{}, 4)
	var chain []string

	add := func(locale string) {
		if locale == "" {
			return
		}
		if _, ok := seen[locale]; ok {
			return
		}
		seen[locale] = struct{}{}
		chain = append(chain, locale)
	}

	add(requested)
	if d != nil && d.parentLocales && requested != "" {
		for _, parent := range localeParentChain(requested) {
			add(parent)
		}
	}
	if d != nil {
		add(d.defaultLocale)
		add(d.fallbackLocale)
	}

	return chain
}
