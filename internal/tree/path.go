package tree

import (
	"strconv"
	"strings"
)

// SplitPath splits an address into its segments. Both '.' and '\' act as
// separators; consecutive separators and empty segments are dropped, so an
// empty result denotes the whole tree.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '.' || r == '\\'
	})
}

// lookup descends node along names. Numeric segments index into sequences.
// A stored nil is reported as absent.
func lookup(node any, names []string) (any, bool) {
	for _, name := range names {
		switch n := node.(type) {
		case map[string]any:
			child, ok := n[name]
			if !ok {
				return nil, false
			}
			node = child
		case []any:
			i, err := strconv.Atoi(name)
			if err != nil || i < 0 || i >= len(n) {
				return nil, false
			}
			node = n[i]
		default:
			return nil, false
		}
	}

	if node == nil {
		return nil, false
	}

	return node, true
}
