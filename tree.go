package loon

import (
	"fmt"
	"strconv"
)

// Value is one node of a parsed translation source: either a leaf holding a
// message template, or a branch keyed by path segment. A node is never both.
type Value struct {
	template string
	children map[string]*Value
}

// Leaf wraps a message template.
func Leaf(template string) *Value {
	return &Value{template: template}
}

// Node wraps a set of named child values.
func Node(children map[string]*Value) *Value {
	if children == nil {
		children = make(map[string]*Value)
	}
	return &Value{children: children}
}

// IsLeaf reports whether the value holds a template rather than children.
func (v *Value) IsLeaf() bool {
	return v != nil && v.children == nil
}

// Template returns the leaf template and ok=false when v is a branch.
func (v *Value) Template() (string, bool) {
	if !v.IsLeaf() {
		return "", false
	}
	return v.template, true
}

// Child returns the named child of a branch value.
func (v *Value) Child(name string) (*Value, bool) {
	if v == nil || v.children == nil {
		return nil, false
	}
	child, ok := v.children[name]
	return child, ok
}

// GetPath descends one segment at a time. It misses when a segment is absent
// or when a leaf is reached before the path is exhausted.
func (v *Value) GetPath(segments []string) (*Value, bool) {
	current := v
	for _, segment := range segments {
		child, ok := current.Child(segment)
		if !ok {
			return nil, false
		}
		current = child
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// Clone returns a deep copy.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	if v.IsLeaf() {
		return Leaf(v.template)
	}
	children := make(map[string]*Value, len(v.children))
	for name, child := range v.children {
		children[name] = child.Clone()
	}
	return Node(children)
}

// ValueFromAny converts a decoded JSON/YAML/TOML document into the closed
// leaf/branch shape. Scalars become leaf templates, mappings become branches.
// Sequences and null values have no translation meaning and are rejected.
func ValueFromAny(input any) (*Value, error) {
	switch typed := input.(type) {
	case string:
		return Leaf(typed), nil
	case bool:
		return Leaf(strconv.FormatBool(typed)), nil
	case int:
		return Leaf(strconv.Itoa(typed)), nil
	case int64:
		return Leaf(strconv.FormatInt(typed, 10)), nil
	case uint64:
		return Leaf(strconv.FormatUint(typed, 10)), nil
	case float64:
		return Leaf(strconv.FormatFloat(typed, 'f', -1, 64)), nil
	case map[string]any:
		children := make(map[string]*Value, len(typed))
		for name, raw := range typed {
			if name == "" {
				return nil, fmt.Errorf("loon: empty key in source mapping")
			}
			child, err := ValueFromAny(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			children[name] = child
		}
		return Node(children), nil
	case map[any]any:
		children := make(map[string]*Value, len(typed))
		for rawName, raw := range typed {
			name, ok := rawName.(string)
			if !ok || name == "" {
				return nil, fmt.Errorf("loon: mapping key %v is not a string", rawName)
			}
			child, err := ValueFromAny(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			children[name] = child
		}
		return Node(children), nil
	case nil:
		return nil, fmt.Errorf("loon: null value in source")
	default:
		return nil, fmt.Errorf("loon: unsupported value type %T", input)
	}
}
