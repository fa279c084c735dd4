/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"strings"

	"github.com/rivo/uniseg"
)

// ReplaceGlyphs substitutes every grapheme cluster of text that is a
// registered glyph with its asset. Other clusters are copied unchanged.
// Glyphs that span more than one grapheme cluster never match.
func (r *Registry) ReplaceGlyphs(text string) string {
	if len(r.byGlyph) == 0 || text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		b.WriteString(r.LookupGlyph(cluster))
	}
	return b.String()
}
