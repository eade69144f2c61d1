// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Property keys read from application.yml, in canonical form (see
// [canonicalKey]). Spring's relaxed binding makes driver-class-name,
// driverClassName and driver_class_name the same key.
const (
	keyURL             = "spring.datasource.url"
	keyUsername        = "spring.datasource.username"
	keyPassword        = "spring.datasource.password"
	keyDriverClassName = "spring.datasource.driverclassname"
	keyDDLAuto         = "spring.jpa.hibernate.ddlauto"
	keyShowSQL         = "spring.jpa.showsql"

	keyProfilesActive = "spring.profiles.active"
	keyOnProfile      = "spring.config.activate.onprofile"
	keyLegacyProfiles = "spring.profiles"
)

// parseYAML reads a Spring application.yml. Documents separated by "---"
// are applied in order; a document carrying spring.config.activate.on-profile
// (or the legacy spring.profiles key) is applied only when one of its
// profiles is active. When profiles is empty the active profiles are taken
// from spring.profiles.active in the unconditional documents.
//
// Placeholders in the datasource values are resolved after the documents
// are merged; values are tagged as file literals or file placeholders in
// Sources. A property whose placeholder cannot be resolved is left empty and
// returned in unresolvedPlaceholders, since a higher layer may still supply it.
func parseYAML(path string, profiles []string) (*StructuredConfig, unresolvedPlaceholders, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	docs, err := decodeDocuments(data)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	props := mergeDocuments(docs, profiles)
	cfg, unresolved, err := buildFileConfig(props)
	if err != nil {
		return nil, nil, fmt.Errorf("error resolving config file %s: %w", path, err)
	}
	return cfg, unresolved, nil
}

// decodeDocuments flattens every YAML document into canonical dotted keys.
func decodeDocuments(data []byte) ([]map[string]string, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []map[string]string
	for {
		var doc map[string]any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if doc == nil {
			continue
		}

		flat := make(map[string]string)
		flatten("", doc, flat)
		docs = append(docs, flat)
	}

	return docs, nil
}

func flatten(prefix string, node any, out map[string]string) {
	switch value := node.(type) {
	case map[string]any:
		for k, v := range value {
			key := canonicalKey(k)
			if prefix != "" {
				key = prefix + "." + key
			}
			flatten(key, v, out)
		}
	case []any:
		items := make([]string, 0, len(value))
		for i, v := range value {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), v, out)
			if _, nested := v.(map[string]any); !nested {
				items = append(items, fmt.Sprint(v))
			}
		}
		// scalar lists are also exposed comma-joined, the way Spring
		// converts them to a single string property
		out[prefix] = strings.Join(items, ",")
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(value)
	}
}

// canonicalKey lower-cases a property name and drops '-' and '_' so that
// kebab-case, camelCase and snake_case spellings match.
func canonicalKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "-", "")
	return strings.ReplaceAll(key, "_", "")
}

func mergeDocuments(docs []map[string]string, profiles []string) map[string]string {
	if len(profiles) == 0 {
		for _, doc := range docs {
			if activation(doc) == "" {
				if active, ok := doc[keyProfilesActive]; ok {
					profiles = splitList(active)
				}
			}
		}
	}

	props := make(map[string]string)
	for _, doc := range docs {
		if expr := activation(doc); expr != "" && !profileMatches(expr, profiles) {
			continue
		}
		for k, v := range doc {
			props[k] = v
		}
	}
	return props
}

func activation(doc map[string]string) string {
	if expr := doc[keyOnProfile]; expr != "" {
		return expr
	}
	return doc[keyLegacyProfiles]
}

// profileMatches evaluates a comma-separated profile list where any entry
// may be negated with '!'. The document applies when any entry matches.
func profileMatches(expr string, active []string) bool {
	isActive := func(name string) bool {
		for _, p := range active {
			if strings.EqualFold(p, name) {
				return true
			}
		}
		return false
	}

	for _, entry := range splitList(expr) {
		if negated, ok := strings.CutPrefix(entry, "!"); ok {
			if !isActive(negated) {
				return true
			}
			continue
		}
		if isActive(entry) {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// unresolvedPlaceholders maps a property key to the error resolving its
// value.
type unresolvedPlaceholders map[string]error

// property binds a property key to its field in a StructuredConfig.
type property struct {
	key    string
	dst    *string
	source *ValueSource
}

func properties(cfg *StructuredConfig) []property {
	return []property{
		{keyURL, &cfg.Spring.Datasource.URL, &cfg.Sources.URL},
		{keyUsername, &cfg.Spring.Datasource.Username, &cfg.Sources.Username},
		{keyPassword, &cfg.Spring.Datasource.Password, &cfg.Sources.Password},
		{keyDriverClassName, &cfg.Spring.Datasource.DriverClassName, nil},
		{keyDDLAuto, &cfg.Spring.JPA.Hibernate.DDLAuto, nil},
		{keyShowSQL, &cfg.Spring.JPA.ShowSQL, nil},
	}
}

func buildFileConfig(props map[string]string) (*StructuredConfig, unresolvedPlaceholders, error) {
	resolver := &placeholderResolver{props: props}
	cfg := &StructuredConfig{}
	unresolved := unresolvedPlaceholders{}

	var errs error
	for _, f := range properties(cfg) {
		raw, ok := props[f.key]
		if !ok {
			continue
		}

		value, placeholder, err := resolver.resolve(raw)
		if errors.Is(err, ErrUnresolvedPlaceholder) {
			unresolved[f.key] = err
			continue
		}
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", f.key, err))
			continue
		}

		*f.dst = value
		if f.source != nil && value != "" {
			*f.source = SourceFileLiteral
			if placeholder {
				*f.source = SourceFilePlaceholder
			}
		}
	}

	if errs != nil {
		return nil, nil, errs
	}
	return cfg, unresolved, nil
}
