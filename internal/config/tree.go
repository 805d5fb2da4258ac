// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind tells which variant a [Value] holds.
type Kind uint8

const (
	// KindScalar marks a leaf value (string, int, bool or any other YAML leaf).
	KindScalar Kind = iota
	// KindMapping marks a nested [Tree].
	KindMapping
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindMapping {
		return "mapping"
	}
	return "scalar"
}

// Value is a node of a configuration [Tree]: either a scalar leaf or a
// nested mapping. The zero Value is a nil scalar.
type Value struct {
	kind    Kind
	scalar  any
	mapping Tree
}

// Scalar wraps a leaf value.
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Mapping wraps a nested tree. A nil tree is stored as an empty one.
func Mapping(t Tree) Value {
	if t == nil {
		t = Tree{}
	}
	return Value{kind: KindMapping, mapping: t}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMapping reports whether v holds a nested tree.
func (v Value) IsMapping() bool {
	return v.kind == KindMapping
}

// Scalar returns the leaf value, or nil when v is a mapping.
func (v Value) Scalar() any {
	if v.IsMapping() {
		return nil
	}
	return v.scalar
}

// Tree returns the nested tree, or nil when v is a scalar.
func (v Value) Tree() Tree {
	if !v.IsMapping() {
		return nil
	}
	return v.mapping
}

func (v Value) clone() Value {
	if v.IsMapping() {
		return Mapping(v.mapping.Clone())
	}
	return v
}

// Tree is a hierarchical configuration document keyed by string.
// Paths into a tree are written with dots, e.g. "storage.remote.region".
type Tree map[string]Value

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = v.clone()
	}
	return out
}

// Keys returns the top-level keys of t in sorted order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get walks t along keys. It reports false when any step is missing or
// crosses a scalar.
func (t Tree) Get(keys ...string) (Value, bool) {
	if len(keys) == 0 {
		return Mapping(t), true
	}

	node := t
	for i, key := range keys {
		v, ok := node[key]
		if !ok {
			return Value{}, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		if !v.IsMapping() {
			return Value{}, false
		}
		node = v.mapping
	}

	return Value{}, false
}

// Lookup is Get with a dotted path.
func (t Tree) Lookup(path string) (Value, bool) {
	return t.Get(splitPath(path)...)
}

// String returns the scalar at path rendered as text. Absent paths, nulls
// and mappings yield def.
func (t Tree) String(path, def string) string {
	v, ok := t.Lookup(path)
	if !ok || v.IsMapping() || v.scalar == nil {
		return def
	}
	if s, ok := v.scalar.(string); ok {
		return s
	}
	return fmt.Sprint(v.scalar)
}

// Int returns the scalar at path as an int. Numeric strings are accepted;
// anything else yields def.
func (t Tree) Int(path string, def int) int {
	v, ok := t.Lookup(path)
	if !ok || v.IsMapping() {
		return def
	}

	switch n := v.scalar.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}

	return def
}

// Bool returns the scalar at path as a bool. Strings accepted by
// strconv.ParseBool are converted; anything else yields def.
func (t Tree) Bool(path string, def bool) bool {
	v, ok := t.Lookup(path)
	if !ok || v.IsMapping() {
		return def
	}

	switch b := v.scalar.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed
		}
	}

	return def
}

// ToMap converts t back into plain nested maps, e.g. for encoding.
func (t Tree) ToMap() map[string]any {
	out := make(map[string]any, len(t))
	for k, v := range t {
		if v.IsMapping() {
			out[k] = v.mapping.ToMap()
			continue
		}
		out[k] = v.scalar
	}
	return out
}

// setPath stores v at keys, creating intermediate mappings and replacing
// scalars that stand in the way. Only used while a tier is being built.
func (t Tree) setPath(keys []string, v Value) {
	node := t
	for _, key := range keys[:len(keys)-1] {
		next, ok := node[key]
		if !ok || !next.IsMapping() {
			next = Mapping(nil)
			node[key] = next
		}
		node = next.mapping
	}
	node[keys[len(keys)-1]] = v
}

// TreeFromMap converts decoded YAML/JSON maps into a Tree. Nested
// map[string]any and map[any]any become mappings; everything else is kept
// as a scalar leaf.
func TreeFromMap(m map[string]any) Tree {
	out := make(Tree, len(m))
	for k, v := range m {
		out[k] = valueOf(v)
	}
	return out
}

func valueOf(raw any) Value {
	switch m := raw.(type) {
	case map[string]any:
		return Mapping(TreeFromMap(m))
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, v := range m {
			converted[fmt.Sprint(k)] = v
		}
		return Mapping(TreeFromMap(converted))
	case Tree:
		return Mapping(m.Clone())
	default:
		return Scalar(raw)
	}
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
