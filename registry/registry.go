/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"log/slog"

	"github.com/suparena/iconregistry/errors"
)

// Key is a symbolic icon identifier, unique within a Registry.
type Key string

// Glyph is an external character representation (usually an emoji) used as
// an alternate, best-effort lookup path.
type Glyph string

// Asset is an opaque, non-empty icon payload such as SVG markup.
type Asset string

// Entry is one symbolic-key registration.
type Entry struct {
	Key   Key
	Asset Asset
}

// GlyphEntry is one glyph registration.
type GlyphEntry struct {
	Glyph Glyph
	Asset Asset
}

// Registry is an immutable icon lookup table. It is safe for concurrent use
// because nothing mutates it after New returns.
type Registry struct {
	keys    []Key
	byKey   map[Key]Asset
	glyphs  []Glyph
	byGlyph map[Glyph]Asset
}

// New builds a Registry from the two literal tables. Construction is
// all-or-nothing: any invalid or (under DuplicateError) repeated row fails
// the whole build.
func New(entries []Entry, glyphs []GlyphEntry, opts ...Option) (*Registry, error) {
	o := options{policy: DuplicateError, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		keys:    make([]Key, 0, len(entries)),
		byKey:   make(map[Key]Asset, len(entries)),
		glyphs:  make([]Glyph, 0, len(glyphs)),
		byGlyph: make(map[Glyph]Asset, len(glyphs)),
	}

	for _, e := range entries {
		if e.Key == "" {
			return nil, errors.NewValidationError("key", "icon key must not be empty")
		}
		if e.Asset == "" {
			return nil, errors.NewValidationError("asset", "asset for key "+string(e.Key)+" must not be empty")
		}
		if _, exists := r.byKey[e.Key]; exists {
			if o.policy == DuplicateError {
				return nil, errors.NewAlreadyExistsError("icon key", string(e.Key))
			}
			o.logger.Warn("icon key overridden", "key", e.Key)
		} else {
			r.keys = append(r.keys, e.Key)
		}
		r.byKey[e.Key] = e.Asset
	}

	for _, g := range glyphs {
		if g.Glyph == "" {
			return nil, errors.NewValidationError("glyph", "glyph must not be empty")
		}
		if g.Asset == "" {
			return nil, errors.NewValidationError("asset", "asset for glyph "+string(g.Glyph)+" must not be empty")
		}
		if _, exists := r.byGlyph[g.Glyph]; exists {
			if o.policy == DuplicateError {
				return nil, errors.NewAlreadyExistsError("glyph", string(g.Glyph))
			}
			o.logger.Warn("glyph overridden", "glyph", g.Glyph)
		} else {
			r.glyphs = append(r.glyphs, g.Glyph)
		}
		r.byGlyph[g.Glyph] = g.Asset
	}

	return r, nil
}

// MustNew is like New but panics on error. Use it for package-level tables
// built from literal data.
func MustNew(entries []Entry, glyphs []GlyphEntry, opts ...Option) *Registry {
	r, err := New(entries, glyphs, opts...)
	if err != nil {
		panic("icon registry: " + err.Error())
	}
	return r
}

// Lookup returns the asset registered for key. A miss is a caller bug and
// yields an *errors.UnknownKeyError.
func (r *Registry) Lookup(key Key) (Asset, error) {
	asset, ok := r.byKey[key]
	if !ok {
		return "", errors.NewUnknownKeyError(string(key))
	}
	return asset, nil
}

// MustLookup returns the asset for a statically known key and panics if it
// is not registered.
func (r *Registry) MustLookup(key Key) Asset {
	asset, err := r.Lookup(key)
	if err != nil {
		panic(err)
	}
	return asset
}

// Has reports whether key is registered.
func (r *Registry) Has(key Key) bool {
	_, ok := r.byKey[key]
	return ok
}

// Glyph returns the asset registered for glyph, if any.
func (r *Registry) Glyph(glyph Glyph) (Asset, bool) {
	asset, ok := r.byGlyph[glyph]
	return asset, ok
}

// LookupGlyph returns the asset registered for glyph, or glyph itself when
// nothing is registered for it.
func (r *Registry) LookupGlyph(glyph string) string {
	if asset, ok := r.byGlyph[Glyph(glyph)]; ok {
		return string(asset)
	}
	return glyph
}

// Keys returns every registered key in registration order.
func (r *Registry) Keys() []Key {
	out := make([]Key, len(r.keys))
	copy(out, r.keys)
	return out
}

// Glyphs returns every registered glyph in registration order.
func (r *Registry) Glyphs() []Glyph {
	out := make([]Glyph, len(r.glyphs))
	copy(out, r.glyphs)
	return out
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	return len(r.keys)
}
