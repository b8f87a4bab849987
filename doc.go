// Package loon resolves localized message templates from structured
// translation files, in the style of ruby-i18n. Parsed sources are merged
// into an immutable Dictionary keyed by locale, keys are dotted or slash
// separated paths, and resolved templates interpolate %{name} variables.
package loon
