package loon

import "testing"

func mustTree(t *testing.T, input any) *Value {
	t.Helper()
	tree, err := ValueFromAny(input)
	if err != nil {
		t.Fatalf("ValueFromAny: %v", err)
	}
	return tree
}

func TestValueFromAny(t *testing.T) {
	tree := mustTree(t, map[string]any{
		"greeting": "Hello, World!",
		"custom": map[string]any{
			"greeting": "Howdy",
		},
		"answer":  42,
		"ratio":   1.5,
		"enabled": true,
	})

	tests := []struct {
		path []string
		want string
	}{
		{path: []string{"greeting"}, want: "Hello, World!"},
		{path: []string{"custom", "greeting"}, want: "Howdy"},
		{path: []string{"answer"}, want: "42"},
		{path: []string{"ratio"}, want: "1.5"},
		{path: []string{"enabled"}, want: "true"},
	}

	for _, tc := range tests {
		value, ok := tree.GetPath(tc.path)
		if !ok {
			t.Fatalf("GetPath(%v) missed", tc.path)
		}
		got, ok := value.Template()
		if !ok || got != tc.want {
			t.Fatalf("Template() = %q,%v want %q", got, ok, tc.want)
		}
	}
}

func TestValueFromAnyRejectsSequences(t *testing.T) {
	if _, err := ValueFromAny(map[string]any{"list": []any{"a", "b"}}); err == nil {
		t.Fatal("expected error for sequence value")
	}
}

func TestValueFromAnyRejectsNull(t *testing.T) {
	if _, err := ValueFromAny(map[string]any{"gone": nil}); err == nil {
		t.Fatal("expected error for null value")
	}
}

func TestGetPathMisses(t *testing.T) {
	tree := mustTree(t, map[string]any{
		"custom": map[string]any{"greeting": "Howdy"},
	})

	tests := []struct {
		name string
		path []string
	}{
		{name: "absent segment", path: []string{"missing"}},
		{name: "leaf hit early", path: []string{"custom", "greeting", "deeper"}},
		{name: "absent nested", path: []string{"custom", "missing"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := tree.GetPath(tc.path); ok {
				t.Fatalf("GetPath(%v) unexpectedly matched", tc.path)
			}
		})
	}
}

func TestGetPathEmptyReturnsSelf(t *testing.T) {
	tree := mustTree(t, map[string]any{"greeting": "hi"})

	value, ok := tree.GetPath(nil)
	if !ok || value != tree {
		t.Fatal("GetPath(nil) should return the receiver")
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := Node(map[string]*Value{
		"custom": Node(map[string]*Value{"greeting": Leaf("Howdy")}),
	})

	clone := original.Clone()
	clone.children["custom"].children["greeting"] = Leaf("Changed")

	value, ok := original.GetPath([]string{"custom", "greeting"})
	if !ok {
		t.Fatal("GetPath missed after clone mutation")
	}
	if got, _ := value.Template(); got != "Howdy" {
		t.Fatalf("original mutated through clone: %q", got)
	}
}
