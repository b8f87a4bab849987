package loon

import (
	"strings"

	"golang.org/x/text/language"
)

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns the parents of locale from closest to root,
// e.g. "pt-BR" yields ["pt"]. Locales that x/text cannot parse fall back to
// hyphen truncation.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, ok := seen[value]; ok {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, ok := seen[current]; ok {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}
