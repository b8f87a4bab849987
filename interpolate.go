package loon

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`%\{([a-zA-Z0-9_]+)\}`)

// Interpolate substitutes %{name} placeholders in template with entries from
// vars. Every placeholder must have a variable; a variable with no
// placeholder is ignored. Delimiter characters that do not form a valid
// placeholder pass through unchanged.
func Interpolate(template string, vars map[string]string) (string, error) {
	if !strings.Contains(template, "%{") {
		return template, nil
	}

	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var out strings.Builder
	out.Grow(len(template))

	last := 0
	for _, match := range matches {
		name := template[match[2]:match[3]]
		value, ok := vars[name]
		if !ok {
			return "", &MissingVariableError{Name: name}
		}
		out.WriteString(template[last:match[0]])
		out.WriteString(value)
		last = match[1]
	}
	out.WriteString(template[last:])

	return out.String(), nil
}

// Placeholders returns the distinct variable names referenced by template,
// in order of first appearance.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
