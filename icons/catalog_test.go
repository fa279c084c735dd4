/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package icons

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/registry"
)

func TestBundledCatalog(t *testing.T) {
	catalog, err := Bundled()
	require.NoError(t, err)

	require.Equal(t, []string{"emoji", "ui"}, catalog.Collections())
	require.Equal(t, 37, catalog.Len())

	seen := make(map[string]struct{})
	for _, icon := range catalog.Icons() {
		id := icon.Collection + "/" + string(icon.Key)
		_, dup := seen[id]
		require.False(t, dup, "duplicate icon %s within a collection", id)
		seen[id] = struct{}{}

		require.NotEmpty(t, strings.TrimSpace(icon.Description), "icon %s missing description", id)
		require.True(t, strings.HasPrefix(string(icon.SVG), "<svg"), "icon %s svg should start with <svg", id)
		require.True(t, strings.HasSuffix(string(icon.SVG), "</svg>"), "icon %s svg should end with </svg>", id)
		if icon.Collection == "emoji" {
			require.Len(t, icon.Glyphs, 1, "emoji icon %s should map one glyph", id)
		}
	}
}

func TestBundledKeysResolve(t *testing.T) {
	reg := Default()

	require.Equal(t, AllKeys, reg.Keys())
	for _, key := range AllKeys {
		asset, err := reg.Lookup(key)
		require.NoError(t, err, "key %s", key)
		require.NotEmpty(t, asset)
	}
}

func TestBundledKeysAreKebabCase(t *testing.T) {
	kebab := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	for _, key := range AllKeys {
		require.Regexp(t, kebab, string(key))
	}

	reg := Default()
	require.True(t, reg.Has("grand-companies"))
	require.False(t, reg.Has("grandCompanies"))
}

func TestBundledDuplicatesNeedPolicy(t *testing.T) {
	catalog, err := Bundled()
	require.NoError(t, err)

	_, err = catalog.Registry()
	require.True(t, errors.IsAlreadyExists(err), "got %v", err)
	require.Contains(t, err.Error(), `"link"`)

	reg, err := catalog.Registry(registry.WithDuplicatePolicy(registry.DuplicateLastWins))
	require.NoError(t, err)
	require.Equal(t, len(AllKeys), reg.Len())
}

func TestDefaultPrefersUICollection(t *testing.T) {
	reg := Default()

	// The ui collection carries stroke attributes on the root element.
	for _, key := range []registry.Key{Link, Locked, Lock, Network, Success, Error} {
		asset := string(reg.MustLookup(key))
		require.True(t, strings.HasPrefix(asset, `<svg viewBox="0 0 24 24" fill="none"`), "key %s not overridden", key)
	}
	require.True(t, strings.HasPrefix(string(reg.MustLookup(Warning)), `<svg xmlns=`))
	require.Same(t, reg, Default())
}

func TestLookupEmoji(t *testing.T) {
	jobs := LookupEmoji("⚔️")
	require.Contains(t, jobs, `<path d="M14.5 17.5L3 6V3h3l11.5 11.5"`)

	require.Equal(t, "🦄", LookupEmoji("🦄"))
	require.Len(t, Default().Glyphs(), 28)

	for _, g := range Default().Glyphs() {
		require.NotEqual(t, string(g), LookupEmoji(string(g)))
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	catalog, err := Bundled()
	require.NoError(t, err)

	records := catalog.Records()
	require.Len(t, records, catalog.Len())
	for i, rec := range records {
		require.Equal(t, i, rec.Position)
	}

	back := FromRecords(records)
	require.Equal(t, catalog.Icons(), back.Icons())
}
