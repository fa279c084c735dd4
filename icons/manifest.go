/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package icons

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/iconregistry/errors"
)

// Manifest is one authored icon collection.
type Manifest struct {
	Collection  string         `yaml:"collection"`
	Description string         `yaml:"description"`
	Icons       []ManifestIcon `yaml:"icons"`
}

// ManifestIcon is a single icon as written in a manifest.
type ManifestIcon struct {
	Key         string   `yaml:"key"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Glyphs      []string `yaml:"glyphs"`
	SVG         string   `yaml:"svg"`
}

// ParseManifest decodes and validates a YAML manifest. Unknown fields are
// rejected so typos in authored data fail the build.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the fields every icon needs. It does not check SVG
// well-formedness.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Collection) == "" {
		return errors.NewValidationError("collection", "manifest must name its collection")
	}
	if len(m.Icons) == 0 {
		return errors.NewValidationError("icons", fmt.Sprintf("collection %s has no icons", m.Collection))
	}
	for i, icon := range m.Icons {
		if strings.TrimSpace(icon.Key) == "" {
			return errors.NewValidationError("key", fmt.Sprintf("%s icon #%d has no key", m.Collection, i))
		}
		if strings.TrimSpace(icon.SVG) == "" {
			return errors.NewValidationError("svg", fmt.Sprintf("%s icon %s has no svg", m.Collection, icon.Key))
		}
		for _, g := range icon.Glyphs {
			if g == "" {
				return errors.NewValidationError("glyphs", fmt.Sprintf("%s icon %s has an empty glyph", m.Collection, icon.Key))
			}
		}
	}
	return nil
}
