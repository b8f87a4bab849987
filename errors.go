package loon

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is matching. The typed errors below carry the
// diagnostic payload and match their sentinel.
var (
	ErrTypeConflict    = errors.New("loon: type conflict")
	ErrMalformedKey    = errors.New("loon: malformed key")
	ErrKeyNotFound     = errors.New("loon: key not found")
	ErrMissingVariable = errors.New("loon: missing variable")
)

// TypeConflictError reports a path defined as both a template and a
// container across merged sources. Build fails rather than picking a side.
type TypeConflictError struct {
	Locale string
	Path   []string
}

func (e *TypeConflictError) Error() string {
	return fmt.Sprintf("loon: %s is both a template and a container in locale %q", strings.Join(e.Path, "."), e.Locale)
}

func (e *TypeConflictError) Is(target error) bool { return target == ErrTypeConflict }

// MalformedKeyError reports a key that parses to an empty segment.
type MalformedKeyError struct {
	Key string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("loon: malformed key %q", e.Key)
}

func (e *MalformedKeyError) Is(target error) bool { return target == ErrMalformedKey }

// KeyNotFoundError reports a key absent from every candidate locale.
// LocalesTried preserves the exact resolution order for diagnostics.
type KeyNotFoundError struct {
	Key          string
	LocalesTried []string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("loon: key %q not found (locales tried: %s)", e.Key, strings.Join(e.LocalesTried, ", "))
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// MissingVariableError reports a placeholder with no supplied variable.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("loon: missing variable %q", e.Name)
}

func (e *MissingVariableError) Is(target error) bool { return target == ErrMissingVariable }
