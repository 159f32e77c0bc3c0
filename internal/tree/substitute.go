// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	// DirToken is replaced by the directory of the file being loaded.
	DirToken = "__DIR__"

	// SeparatorToken is replaced by the platform path separator.
	SeparatorToken = "DIRECTORY_SEPARATOR"
)

type substituter struct {
	constants         map[string]string
	pattern           *regexp.Regexp
	coerceNumbers     bool
	canonicalizePaths bool
}

func newSubstituter() *substituter {
	s := &substituter{constants: make(map[string]string)}
	s.setPrefix(DefaultConstantPrefix)
	return s
}

func (s *substituter) setPrefix(prefix string) {
	s.pattern = regexp.MustCompile(regexp.QuoteMeta(prefix) + `[A-Z_]+`)
}

// apply returns a normalised copy of v.
func (s *substituter) apply(v any, dir string) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			r, err := s.apply(child, dir)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			r, err := s.apply(child, dir)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case string:
		return s.applyString(val, dir)
	default:
		if generic, ok := genericContainer(v); ok {
			return s.apply(generic, dir)
		}
		return v, nil
	}
}

// genericContainer converts typed maps and slices such as map[string]string
// or []int into map[string]any and []any. Map keys are formatted with fmt.
// []byte stays a scalar.
func genericContainer(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return out, true
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

func (s *substituter) applyString(value, dir string) (any, error) {
	if value == "" {
		return value, nil
	}

	if names := uniqueMatches(s.pattern.FindAllString(value, -1)); len(names) > 0 {
		// longest names first so a constant never shadows a longer one
		sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

		pairs := make([]string, 0, 2*len(names))
		for _, name := range names {
			constant, ok := s.constants[name]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUndefinedConstant, name)
			}
			pairs = append(pairs, name, constant)
		}

		// dots glue constants to literal text ("CONF_ROOT./etc") and are dropped
		value = strings.ReplaceAll(value, ".", "")
		value = strings.NewReplacer(pairs...).Replace(value)

		if s.coerceNumbers {
			if n, ok := toInt(value); ok {
				return n, nil
			}
		}
	}

	if strings.Contains(value, DirToken) {
		value = strings.ReplaceAll(value, DirToken, dir)
	}
	if strings.Contains(value, SeparatorToken) {
		value = strings.ReplaceAll(value, SeparatorToken, string(os.PathSeparator))
	}

	if s.canonicalizePaths && strings.Contains(value, "..") {
		return canonicalPath(value), nil
	}

	return value, nil
}

// canonicalPath resolves value to an absolute path without symlinks, or nil
// when the path does not exist.
func canonicalPath(value string) any {
	abs, err := filepath.Abs(value)
	if err != nil {
		return nil
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil
	}

	return resolved
}

// toInt reports whether s is numeric and returns its integer part.
func toInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return int(f), true
}

func uniqueMatches(matches []string) []string {
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}

	return out
}
