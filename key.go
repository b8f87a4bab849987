package loon

import "strings"

// SplitKey parses a dotted or slash separated key into path segments. One
// leading separator is stripped, so "/greeting" and "greeting" are the same
// key. An empty key or empty segment is malformed.
func SplitKey(key string) ([]string, error) {
	trimmed := key
	if len(trimmed) > 0 && (trimmed[0] == '.' || trimmed[0] == '/') {
		trimmed = trimmed[1:]
	}
	if trimmed == "" {
		return nil, &MalformedKeyError{Key: key}
	}

	normalized := strings.ReplaceAll(trimmed, "/", ".")
	segments := strings.Split(normalized, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, &MalformedKeyError{Key: key}
		}
	}
	return segments, nil
}
