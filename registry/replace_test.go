/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceGlyphs(t *testing.T) {
	reg := MustNew(nil, []GlyphEntry{
		{Glyph: "⚠️", Asset: "<w/>"},
		{Glyph: "🏗️", Asset: "<b/>"},
		{Glyph: "📦", Asset: "<p/>"},
	})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no glyphs", "plain text", "plain text"},
		{"single", "⚠️ Offline", "<w/> Offline"},
		{"variation selector kept in cluster", "🏗️ Build", "<b/> Build"},
		{"adjacent", "📦📦", "<p/><p/>"},
		{"unregistered passes through", "🎉 done ⚠️", "🎉 done <w/>"},
		{"bare sign without selector", "⚠ x", "⚠ x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reg.ReplaceGlyphs(tt.in))
		})
	}
}

func TestReplaceGlyphsWithoutGlyphTable(t *testing.T) {
	reg := MustNew([]Entry{{Key: "warning", Asset: "<w/>"}}, nil)
	require.Equal(t, "⚠️ x", reg.ReplaceGlyphs("⚠️ x"))
}
