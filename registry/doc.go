/*
Package registry implements the immutable icon lookup table.

A Registry owns two independent tables built once from literal data:

  - symbolic keys to assets, e.g. "warning" → "<svg>…</svg>"
  - glyphs to assets, e.g. "⚠️" → "<svg>…</svg>"

The two lookups have different failure contracts. Symbolic keys are an
internal contract, so a miss is reported as an error:

	svg, err := reg.Lookup("warning")
	if errors.IsUnknownKey(err) {
	    // caller bug
	}

Glyphs come from external or legacy content, so a miss degrades to the
input glyph:

	reg.LookupGlyph("⚠️") // the warning SVG
	reg.LookupGlyph("🦄") // "🦄"

Registries are constructed with New (or MustNew for package-level data)
and never change afterwards, so they can be shared between goroutines
without locking. Repeated keys or glyphs fail construction unless
WithDuplicatePolicy(DuplicateLastWins) is passed.
*/
package registry
