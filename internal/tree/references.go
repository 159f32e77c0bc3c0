// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`%([^%]+)%`)

// maxResolutionPasses bounds the fixed-point iteration of
// [resolveReferences]; placeholders left after the last pass form a cycle.
const maxResolutionPasses = 64

// resolveReferences replaces placeholders across root until a pass changes
// nothing, so chains such as a -> b -> c settle regardless of map order.
// Keys are visited in sorted order, which keeps the outcome for cycles
// deterministic.
func resolveReferences(root map[string]any) error {
	for pass := 0; pass < maxResolutionPasses; pass++ {
		changed, err := resolveMapping(root, root, "")
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}

	return nil
}

func resolveMapping(root, node map[string]any, path string) (bool, error) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	changed := false
	for _, k := range keys {
		child := k
		if path != "" {
			child = path + "." + k
		}
		resolved, c, err := resolveNode(root, node[k], child)
		if err != nil {
			return false, err
		}
		node[k] = resolved
		changed = changed || c
	}

	return changed, nil
}

func resolveNode(root map[string]any, node any, path string) (any, bool, error) {
	switch val := node.(type) {
	case map[string]any:
		changed, err := resolveMapping(root, val, path)
		return val, changed, err
	case []any:
		changed := false
		for i, child := range val {
			resolved, c, err := resolveNode(root, child, path+"."+strconv.Itoa(i))
			if err != nil {
				return nil, false, err
			}
			val[i] = resolved
			changed = changed || c
		}
		return val, changed, nil
	case string:
		resolved, err := resolveString(root, val, path)
		if err != nil {
			return nil, false, err
		}
		s, isString := resolved.(string)
		return resolved, !isString || s != val, nil
	default:
		return node, false, nil
	}
}

// resolveString substitutes the placeholders of value. A placeholder that
// spans the whole string is replaced by the target in its native type; any
// other placeholder is replaced by the text form of a scalar target.
// Unresolvable placeholders are kept verbatim.
func resolveString(root map[string]any, value, path string) (any, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return value, nil
	}

	if len(matches) == 1 && matches[0][0] == 0 && matches[0][1] == len(value) {
		target, ok := lookup(root, SplitPath(value[matches[0][2]:matches[0][3]]))
		if !ok {
			return value, nil
		}
		return deepCopy(target), nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(value[last:m[0]])
		last = m[1]

		address := value[m[2]:m[3]]
		target, ok := lookup(root, SplitPath(address))
		if !ok {
			b.WriteString(value[m[0]:m[1]])
			continue
		}

		text, ok := scalarText(target)
		if !ok {
			return nil, fmt.Errorf("%w: %s references %q which is not a scalar", ErrInvalidReferenceComposition, path, address)
		}
		b.WriteString(text)
	}
	b.WriteString(value[last:])

	return b.String(), nil
}

func scalarText(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}
