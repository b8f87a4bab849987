package loon

import "fmt"

// Source is one parsed translation input handed to Build by an adapter.
// Locale may be empty when the adapter could not attach a hint; such sources
// are merged into every locale already seen, or into the default locale when
// they arrive first.
type Source struct {
	ID     string
	Locale string
	Tree   *Value
}

// Build merges the given sources into a Dictionary resolving with the given
// config. Sources are merged in order, recursively, and a later source wins
// at template granularity. Build holds no state once it returns.
func Build(cfg *Config, sources []Source) (*Dictionary, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	trees := make(map[string]*Value, len(sources))
	var seen []string

	for _, src := range sources {
		if src.Tree == nil {
			continue
		}

		targets, err := hintTargets(src, seen, cfg.defaultLocale)
		if err != nil {
			return nil, err
		}

		for _, locale := range targets {
			merged, err := mergeValues(trees[locale], src.Tree, locale, nil)
			if err != nil {
				return nil, err
			}
			if _, ok := trees[locale]; !ok {
				seen = append(seen, locale)
			}
			trees[locale] = merged
		}
	}

	return newDictionary(cfg, trees), nil
}

// hintTargets applies the hint-less source policy as a pure function: an
// explicit hint binds the source to that locale, otherwise the source
// belongs to every locale seen so far, falling back to the default locale.
func hintTargets(src Source, seen []string, defaultLocale string) ([]string, error) {
	if src.Locale != "" {
		return []string{src.Locale}, nil
	}
	if len(seen) > 0 {
		return append([]string(nil), seen...), nil
	}
	if defaultLocale != "" {
		return []string{defaultLocale}, nil
	}
	return nil, fmt.Errorf("loon: cannot determine locale for source %q: no locales loaded and no default locale configured", src.ID)
}

// mergeValues merges incoming into acc, key by key. Both sides stay intact;
// the result shares no mutable state with either input.
func mergeValues(acc, incoming *Value, locale string, path []string) (*Value, error) {
	if incoming == nil {
		return acc, nil
	}
	if acc == nil {
		return incoming.Clone(), nil
	}

	if acc.IsLeaf() != incoming.IsLeaf() {
		return nil, &TypeConflictError{
			Locale: locale,
			Path:   append([]string(nil), path...),
		}
	}

	if incoming.IsLeaf() {
		// later source wins at template granularity
		return Leaf(incoming.template), nil
	}

	children := make(map[string]*Value, len(acc.children)+len(incoming.children))
	for name, child := range acc.children {
		children[name] = child
	}
	for name, child := range incoming.children {
		merged, err := mergeValues(children[name], child, locale, append(path, name))
		if err != nil {
			return nil, err
		}
		children[name] = merged
	}
	return Node(children), nil
}
