/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suparena/iconregistry/errors"
)

const (
	warningSVG = Asset("<svg>warning</svg>")
	lockSVG    = Asset("<svg>lock</svg>")
)

func TestLookupByKey(t *testing.T) {
	reg, err := New([]Entry{{Key: "warning", Asset: warningSVG}}, nil)
	require.NoError(t, err)

	got, err := reg.Lookup("warning")
	require.NoError(t, err)
	require.Equal(t, warningSVG, got)

	_, err = reg.Lookup("nonexistent")
	require.Error(t, err)
	require.True(t, errors.IsUnknownKey(err))
	require.Contains(t, err.Error(), `"nonexistent"`)
}

func TestLookupGlyph(t *testing.T) {
	reg, err := New(nil, []GlyphEntry{
		{Glyph: "⚠️", Asset: warningSVG},
		{Glyph: "🔒", Asset: lockSVG},
	})
	require.NoError(t, err)

	require.Equal(t, string(warningSVG), reg.LookupGlyph("⚠️"))
	require.Equal(t, string(lockSVG), reg.LookupGlyph("🔒"))
	require.Equal(t, "🎉", reg.LookupGlyph("🎉"))

	// Exact match only: the bare sign without the variation selector is a different glyph.
	require.Equal(t, "⚠", reg.LookupGlyph("⚠"))

	_, ok := reg.Glyph("🎉")
	require.False(t, ok)
}

func TestMustLookup(t *testing.T) {
	reg := MustNew([]Entry{{Key: "warning", Asset: warningSVG}}, nil)
	require.Equal(t, warningSVG, reg.MustLookup("warning"))
	require.Panics(t, func() { reg.MustLookup("nonexistent") })
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		glyphs  []GlyphEntry
	}{
		{"empty key", []Entry{{Key: "", Asset: warningSVG}}, nil},
		{"empty asset", []Entry{{Key: "warning", Asset: ""}}, nil},
		{"empty glyph", nil, []GlyphEntry{{Glyph: "", Asset: warningSVG}}},
		{"empty glyph asset", nil, []GlyphEntry{{Glyph: "⚠️", Asset: ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := New(tt.entries, tt.glyphs)
			require.Nil(t, reg)
			require.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestDuplicateError(t *testing.T) {
	_, err := New([]Entry{
		{Key: "link", Asset: "<svg>a</svg>"},
		{Key: "link", Asset: "<svg>b</svg>"},
	}, nil)
	require.True(t, errors.IsAlreadyExists(err))
	require.Contains(t, err.Error(), `"link"`)

	_, err = New(nil, []GlyphEntry{
		{Glyph: "🔗", Asset: "<svg>a</svg>"},
		{Glyph: "🔗", Asset: "<svg>b</svg>"},
	})
	require.True(t, errors.IsAlreadyExists(err))

	require.Panics(t, func() {
		MustNew([]Entry{{Key: "x", Asset: "a"}, {Key: "x", Asset: "b"}}, nil)
	})
}

func TestDuplicateLastWins(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	reg, err := New([]Entry{
		{Key: "link", Asset: "<svg>a</svg>"},
		{Key: "lock", Asset: lockSVG},
		{Key: "link", Asset: "<svg>b</svg>"},
	}, []GlyphEntry{
		{Glyph: "🔗", Asset: "<svg>a</svg>"},
		{Glyph: "🔗", Asset: "<svg>b</svg>"},
	}, WithDuplicatePolicy(DuplicateLastWins), WithLogger(logger))
	require.NoError(t, err)

	require.Equal(t, []Key{"link", "lock"}, reg.Keys())
	require.Equal(t, Asset("<svg>b</svg>"), reg.MustLookup("link"))
	require.Equal(t, "<svg>b</svg>", reg.LookupGlyph("🔗"))
	require.Equal(t, []Glyph{"🔗"}, reg.Glyphs())
	require.Contains(t, buf.String(), "icon key overridden")
	require.Contains(t, buf.String(), "glyph overridden")
}

func TestKeysPreserveOrderAndAreCopies(t *testing.T) {
	reg := MustNew([]Entry{
		{Key: "jobs", Asset: "a"},
		{Key: "seasons", Asset: "b"},
		{Key: "events", Asset: "c"},
	}, nil)

	keys := reg.Keys()
	require.Equal(t, []Key{"jobs", "seasons", "events"}, keys)
	require.Equal(t, 3, reg.Len())

	keys[0] = "mutated"
	require.Equal(t, Key("jobs"), reg.Keys()[0])
	require.True(t, reg.Has("jobs"))
	require.False(t, reg.Has("mutated"))
}

func TestDuplicatePolicyParse(t *testing.T) {
	p, err := ParseDuplicatePolicy("last-wins")
	require.NoError(t, err)
	require.Equal(t, DuplicateLastWins, p)
	require.Equal(t, "last-wins", p.String())

	p, err = ParseDuplicatePolicy("error")
	require.NoError(t, err)
	require.Equal(t, DuplicateError, p)

	_, err = ParseDuplicatePolicy("first-wins")
	require.Error(t, err)
}

func TestConcurrentReads(t *testing.T) {
	reg := MustNew([]Entry{{Key: "warning", Asset: warningSVG}},
		[]GlyphEntry{{Glyph: "⚠️", Asset: warningSVG}})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if reg.MustLookup("warning") != warningSVG {
					t.Error("unexpected asset")
				}
				if reg.LookupGlyph("⚠️") != string(warningSVG) {
					t.Error("unexpected glyph asset")
				}
			}
		}()
	}
	wg.Wait()
}
