// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
)

// Tree is a namespaced configuration tree.
//
// A Tree is safe for concurrent use: reads share a lock, and every Add runs
// its merge and reference-resolution pass under an exclusive lock.
type Tree struct {
	mu          sync.RWMutex
	root        map[string]any
	substituter *substituter
}

// New constructs an empty [Tree] configured by opts.
func New(opts ...Option) *Tree {
	t := &Tree{
		root:        make(map[string]any),
		substituter: newSubstituter(),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Add stores data under namespace.
//
// The first path segment selects (creating it if needed) a top-level
// namespace; missing intermediate segments are created as empty mappings.
// At the terminal segment a mapping is shallow-merged into an existing
// mapping (keys from data win) while any other value replaces the node. With
// [Overwrite] the existing node is always replaced.
//
// Before storing, data is normalised by value substitution. Typed maps and
// slices (map[string]string, []int, ...) are converted to the tree's own
// mapping and sequence types. After storing, reference resolution runs over
// the entire tree. The change is applied to a working copy that replaces the
// tree only when resolution succeeds, so a failed Add leaves the tree as it
// was.
func (t *Tree) Add(namespace string, data any, opts ...AddOption) error {
	names := SplitPath(namespace)
	if len(names) == 0 {
		return ErrEmptyNamespace
	}

	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}

	dir := ""
	if o.file != "" {
		dir = filepath.Dir(o.file)
	}

	value, err := t.substituter.apply(data, dir)
	if err != nil {
		return fmt.Errorf("substitute values for %q: %w", namespace, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	work := deepCopy(t.root).(map[string]any)
	insert(work, names, value, o.overwrite)
	if err = resolveReferences(work); err != nil {
		return err
	}
	t.root = work

	return nil
}

// Get returns a copy of the value stored at path. An empty path returns all
// namespaces. The boolean is false when any segment is missing or the stored
// value is nil.
func (t *Tree) Get(path string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := lookup(t.root, SplitPath(path))
	if !ok {
		return nil, false
	}

	return deepCopy(v), true
}

// String returns the string stored at path.
func (t *Tree) String(path string) (string, bool) {
	v, ok := t.Get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the integer stored at path.
func (t *Tree) Int(path string) (int, bool) {
	v, ok := t.Get(path)
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

// Bool returns the boolean stored at path.
func (t *Tree) Bool(path string) (bool, bool) {
	v, ok := t.Get(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Map returns the mapping stored at path.
func (t *Tree) Map(path string) (map[string]any, bool) {
	v, ok := t.Get(path)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// All returns a copy of every namespace in the tree.
func (t *Tree) All() map[string]any {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return deepCopy(t.root).(map[string]any)
}

// Namespaces returns the sorted names of the top-level namespaces.
func (t *Tree) Namespaces() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.root))
	for name := range t.root {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Restore replaces the whole content of the tree with a copy of data. No
// substitution or reference resolution takes place: data is expected to be
// a fully resolved dump such as a snapshot.
func (t *Tree) Restore(data map[string]any) {
	root := make(map[string]any, len(data))
	for k, v := range data {
		root[k] = deepCopy(v)
	}

	t.mu.Lock()
	t.root = root
	t.mu.Unlock()
}

func insert(node map[string]any, names []string, value any, overwrite bool) {
	name := names[0]
	if len(names) == 1 {
		node[name] = merge(node[name], value, overwrite)
		return
	}

	child, ok := node[name].(map[string]any)
	if !ok {
		child = make(map[string]any)
		node[name] = child
	}

	insert(child, names[1:], value, overwrite)
}

func merge(existing, data any, overwrite bool) any {
	incoming, ok := data.(map[string]any)
	if !ok || overwrite {
		return data
	}

	current, ok := existing.(map[string]any)
	if !ok {
		return incoming
	}

	for k, v := range incoming {
		current[k] = v
	}

	return current
}
