// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-conf-keeper/internal/tree"
)

// AllSection is the section shared by every environment.
const AllSection = "all"

// MergeEnvironment selects the configuration of env from a sectioned source.
//
// The result starts as a copy of the "all" section (when it is a mapping) and
// the env section (when it is a mapping) is deep-merged over it: mappings
// merge key by key at every level, any other value from env replaces the
// shared one. Every other section is discarded. raw itself is never
// modified.
func MergeEnvironment(raw any, env string) (map[string]any, error) {
	merged := make(map[string]any)

	doc, ok := raw.(map[string]any)
	if !ok {
		return merged, nil
	}

	if all, ok := doc[AllSection].(map[string]any); ok {
		merged = tree.Clone(all).(map[string]any)
	}

	section, ok := doc[env].(map[string]any)
	if !ok {
		return merged, nil
	}

	if err := mergo.Merge(&merged, tree.Clone(section), mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge %q section over %q: %w", env, AllSection, err)
	}

	return merged, nil
}
