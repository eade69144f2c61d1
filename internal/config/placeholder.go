// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"
)

// maxPlaceholderDepth bounds property-to-property references and nested
// defaults.
const maxPlaceholderDepth = 8

// placeholderResolver substitutes Spring-style ${NAME} and ${NAME:default}
// placeholders. A name is looked up, in order, as an environment variable,
// as an environment variable in Spring's relaxed form (spring.datasource.url
// -> SPRING_DATASOURCE_URL) and as another property of the same file.
// Defaults may themselves hold placeholders: ${A:${B:x}}.
type placeholderResolver struct {
	props map[string]string
}

// resolve returns value with all placeholders substituted and whether value
// contained any placeholder.
func (r *placeholderResolver) resolve(value string) (string, bool, error) {
	return r.resolveDepth(value, 0)
}

func (r *placeholderResolver) resolveDepth(value string, depth int) (string, bool, error) {
	start, end := nextPlaceholder(value, 0)
	if start < 0 {
		return value, false, nil
	}
	if depth >= maxPlaceholderDepth {
		return "", true, fmt.Errorf("%w: %s", ErrPlaceholderCycle, value)
	}

	var sb strings.Builder
	last := 0
	for start >= 0 {
		sb.WriteString(value[last:start])

		name, def, hasDefault := splitPlaceholder(value[start+2 : end-1])
		resolved, ok, err := r.lookup(name, depth)
		if err != nil {
			return "", true, err
		}
		switch {
		case ok:
			sb.WriteString(resolved)
		case hasDefault:
			resolved, _, err = r.resolveDepth(def, depth+1)
			if err != nil {
				return "", true, err
			}
			sb.WriteString(resolved)
		default:
			return "", true, fmt.Errorf("%w: ${%s}", ErrUnresolvedPlaceholder, name)
		}

		last = end
		start, end = nextPlaceholder(value, last)
	}
	sb.WriteString(value[last:])

	return sb.String(), true, nil
}

func (r *placeholderResolver) lookup(name string, depth int) (string, bool, error) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true, nil
	}
	if v, ok := os.LookupEnv(relaxedEnvName(name)); ok {
		return v, true, nil
	}
	if v, ok := r.props[canonicalKey(name)]; ok {
		resolved, _, err := r.resolveDepth(v, depth+1)
		return resolved, err == nil, err
	}
	return "", false, nil
}

// nextPlaceholder returns the offsets of the first ${...} at or after from,
// end exclusive, matching nested braces. An unterminated ${ is left as text
// and reported as start -1.
func nextPlaceholder(value string, from int) (start, end int) {
	i := strings.Index(value[from:], "${")
	if i < 0 {
		return -1, -1
	}
	start = from + i

	depth := 0
	for j := start; j < len(value); j++ {
		switch {
		case strings.HasPrefix(value[j:], "${"):
			depth++
			j++
		case value[j] == '}':
			depth--
			if depth == 0 {
				return start, j + 1
			}
		}
	}
	return -1, -1
}

// splitPlaceholder splits the body of a placeholder at the first ':' that is
// not inside a nested placeholder.
func splitPlaceholder(body string) (name, def string, hasDefault bool) {
	depth := 0
	for i := 0; i < len(body); i++ {
		switch {
		case strings.HasPrefix(body[i:], "${"):
			depth++
			i++
		case body[i] == '}':
			depth--
		case body[i] == ':' && depth == 0:
			return strings.TrimSpace(body[:i]), body[i+1:], true
		}
	}
	return strings.TrimSpace(body), "", false
}

// relaxedEnvName converts a property name to the environment variable Spring
// binds it from: dots become underscores, dashes are dropped, upper case.
func relaxedEnvName(name string) string {
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, ".", "_")
	return strings.ToUpper(name)
}
