// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tree implements the namespaced in-memory configuration tree.
//
// A [Tree] maps top-level namespaces to arbitrarily nested values. Values are
// scalars (string, bool, int, float64, nil), sequences ([]any) or mappings
// (map[string]any). Addresses are dotted or backslash-delimited strings:
// "database.params.user" and `database\params\user` denote the same node.
//
// Every [Tree.Add] normalises the incoming data once (constant substitution,
// __DIR__ and DIRECTORY_SEPARATOR tokens, optional compatibility shims) and
// then re-runs reference resolution over the whole tree, so that "%db.host%"
// placeholders are replaced as soon as their target appears:
//
//	t := tree.New()
//	_ = t.Add("app", map[string]any{"connection": "%db.host%"})
//	_ = t.Add("db", map[string]any{"host": "localhost"})
//	v, _ := t.Get("app.connection") // "localhost"
//
// The tree owns every node it stores. Values passed to Add and returned from
// Get are deep copies.
package tree
