/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package icons

import (
	"sync"

	"github.com/suparena/iconregistry/logging"
	"github.com/suparena/iconregistry/registry"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *registry.Registry
)

// Default returns the registry built from the bundled catalogue. It is
// built once per process with DuplicateLastWins, so the ui collection
// overrides repeated emoji keys. Invalid embedded data panics.
//
// Prefer passing a *registry.Registry to consumers; Default is the
// one-time initialisation point for the bundled data.
func Default() *registry.Registry {
	defaultOnce.Do(func() {
		catalog, err := Bundled()
		if err != nil {
			panic("icons: " + err.Error())
		}
		entries, glyphs := catalog.Tables()
		defaultRegistry = registry.MustNew(entries, glyphs,
			registry.WithDuplicatePolicy(registry.DuplicateLastWins),
			// The bundled overrides are deliberate.
			registry.WithLogger(logging.Discard()),
		)
	})
	return defaultRegistry
}

// LookupEmoji returns the bundled SVG for emoji, or emoji unchanged.
func LookupEmoji(emoji string) string {
	return Default().LookupGlyph(emoji)
}

