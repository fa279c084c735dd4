/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package icons

import (
	"fmt"

	"github.com/suparena/iconregistry/registry"
	"github.com/suparena/iconregistry/storagemodels"
)

// Icon is one catalogue entry.
type Icon struct {
	Key         registry.Key
	Collection  string
	Category    string
	Description string
	Glyphs      []registry.Glyph
	SVG         registry.Asset
}

// Catalog is an ordered list of icons drawn from one or more collections.
// The same key may appear in several collections; Registry decides how
// repeats are merged.
type Catalog struct {
	icons []Icon
}

// NewCatalog flattens manifests into a catalogue, preserving manifest and
// icon order.
func NewCatalog(manifests ...*Manifest) *Catalog {
	c := &Catalog{}
	for _, m := range manifests {
		for _, mi := range m.Icons {
			icon := Icon{
				Key:         registry.Key(mi.Key),
				Collection:  m.Collection,
				Category:    mi.Category,
				Description: mi.Description,
				SVG:         registry.Asset(mi.SVG),
			}
			for _, g := range mi.Glyphs {
				icon.Glyphs = append(icon.Glyphs, registry.Glyph(g))
			}
			c.icons = append(c.icons, icon)
		}
	}
	return c
}

// Bundled parses the manifests embedded in this package.
func Bundled() (*Catalog, error) {
	manifests := make([]*Manifest, 0, len(bundledManifests))
	for _, b := range bundledManifests {
		m, err := ParseManifest(b.data)
		if err != nil {
			return nil, fmt.Errorf("bundled manifest %s: %w", b.name, err)
		}
		manifests = append(manifests, m)
	}
	return NewCatalog(manifests...), nil
}

// Icons returns a copy of the catalogue entries.
func (c *Catalog) Icons() []Icon {
	result := make([]Icon, len(c.icons))
	copy(result, c.icons)
	return result
}

// Len returns the number of catalogue entries, repeats included.
func (c *Catalog) Len() int {
	return len(c.icons)
}

// Collections returns the collection names in first-appearance order.
func (c *Catalog) Collections() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, icon := range c.icons {
		if _, ok := seen[icon.Collection]; ok {
			continue
		}
		seen[icon.Collection] = struct{}{}
		out = append(out, icon.Collection)
	}
	return out
}

// Tables returns the key and glyph construction rows in catalogue order.
func (c *Catalog) Tables() ([]registry.Entry, []registry.GlyphEntry) {
	entries := make([]registry.Entry, 0, len(c.icons))
	var glyphs []registry.GlyphEntry
	for _, icon := range c.icons {
		entries = append(entries, registry.Entry{Key: icon.Key, Asset: icon.SVG})
		for _, g := range icon.Glyphs {
			glyphs = append(glyphs, registry.GlyphEntry{Glyph: g, Asset: icon.SVG})
		}
	}
	return entries, glyphs
}

// Registry builds an immutable registry from the catalogue.
func (c *Catalog) Registry(opts ...registry.Option) (*registry.Registry, error) {
	entries, glyphs := c.Tables()
	return registry.New(entries, glyphs, opts...)
}

// Records converts the catalogue to storage records. Position is the
// catalogue index so a store round trip keeps the order.
func (c *Catalog) Records() []storagemodels.IconRecord {
	records := make([]storagemodels.IconRecord, 0, len(c.icons))
	for i, icon := range c.icons {
		rec := storagemodels.IconRecord{
			Key:         string(icon.Key),
			Collection:  icon.Collection,
			Category:    icon.Category,
			Description: icon.Description,
			SVG:         string(icon.SVG),
			Position:    i,
		}
		for _, g := range icon.Glyphs {
			rec.Glyphs = append(rec.Glyphs, string(g))
		}
		records = append(records, rec)
	}
	return records
}

// FromRecords rebuilds a catalogue from storage records in the given order.
func FromRecords(records []storagemodels.IconRecord) *Catalog {
	c := &Catalog{icons: make([]Icon, 0, len(records))}
	for _, rec := range records {
		icon := Icon{
			Key:         registry.Key(rec.Key),
			Collection:  rec.Collection,
			Category:    rec.Category,
			Description: rec.Description,
			SVG:         registry.Asset(rec.SVG),
		}
		for _, g := range rec.Glyphs {
			icon.Glyphs = append(icon.Glyphs, registry.Glyph(g))
		}
		c.icons = append(c.icons, icon)
	}
	return c
}
