package loon

import (
	"errors"
	"testing"
)

func translateDict(t *testing.T) *Dictionary {
	t.Helper()
	cfg := NewConfig(WithDefaultLocale("en"))
	return buildDict(t, cfg,
		Source{Locale: "en", Tree: mustTree(t, map[string]any{
			"greeting":         "Hello, World!",
			"special-greeting": "Hello, %{name}!!!",
			"missing": map[string]any{
				"default": "Sorry, that translation doesn't exist.",
			},
			"messages": map[string]any{
				"zero":  "You have no messages.",
				"one":   "You have one message.",
				"other": "You have %{count} messages.",
			},
		})},
		Source{Locale: "de", Tree: mustTree(t, map[string]any{
			"greeting": "Hallo Welt!",
		})},
	)
}

func TestTranslateEndToEnd(t *testing.T) {
	dict := translateDict(t)

	got, err := dict.Translate("greeting")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hello, World!" {
		t.Fatalf("Translate(greeting) = %q", got)
	}
}

func TestTranslateWithVars(t *testing.T) {
	dict := translateDict(t)

	got, err := dict.Translate("special-greeting", WithVar("name", "Jacob"))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hello, Jacob!!!" {
		t.Fatalf("Translate() = %q", got)
	}

	got, err = dict.Translate("special-greeting", WithVars(map[string]string{"name": "Ada", "extra": "x"}))
	if err != nil {
		t.Fatalf("Translate with map: %v", err)
	}
	if got != "Hello, Ada!!!" {
		t.Fatalf("Translate() = %q", got)
	}

	if _, err := dict.Translate("special-greeting"); !errors.Is(err, ErrMissingVariable) {
		t.Fatalf("expected ErrMissingVariable, got %v", err)
	}
}

func TestTranslateExplicitLocale(t *testing.T) {
	dict := translateDict(t)

	got, err := dict.Translate("greeting", WithLocale("de"))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hallo Welt!" {
		t.Fatalf("Translate(de) = %q", got)
	}
}

func TestTranslateDefaultKey(t *testing.T) {
	dict := translateDict(t)

	got, err := dict.Translate("missed", WithDefaultKey("missing.default"))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Sorry, that translation doesn't exist." {
		t.Fatalf("Translate() = %q", got)
	}

	// the default key misses too
	_, err = dict.Translate("missed", WithDefaultKey("also.missing"))
	var notFound *KeyNotFoundError
	if !errors.As(err, &notFound) || notFound.Key != "also.missing" {
		t.Fatalf("expected KeyNotFound for default key, got %v", err)
	}

	// a malformed key is not recovered by the default key
	if _, err := dict.Translate("a..b", WithDefaultKey("greeting")); !errors.Is(err, ErrMalformedKey) {
		t.Fatalf("expected ErrMalformedKey, got %v", err)
	}
}

func TestTranslateWithCount(t *testing.T) {
	dict := translateDict(t)

	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "You have no messages."},
		{count: 1, want: "You have one message."},
		{count: 200, want: "You have 200 messages."},
	}

	for _, tc := range tests {
		got, err := dict.Translate("messages", WithCount(tc.count))
		if err != nil {
			t.Fatalf("Translate(count=%d): %v", tc.count, err)
		}
		if got != tc.want {
			t.Fatalf("Translate(count=%d) = %q want %q", tc.count, got, tc.want)
		}
	}
}
