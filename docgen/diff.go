/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/suparena/iconregistry/icons"
)

// ChangeKind classifies a catalogue difference.
type ChangeKind string

const (
	Added   ChangeKind = "added"
	Removed ChangeKind = "removed"
	Changed ChangeKind = "changed"
)

// Change is one icon that differs between two catalogues. ID is
// "collection/key".
type Change struct {
	ID     string
	Kind   ChangeKind
	Fields []string
	// Patch holds the SVG patch for changed markup.
	Patch string
}

func iconID(icon icons.Icon) string {
	return icon.Collection + "/" + string(icon.Key)
}

// Diff compares two catalogues icon by icon. Changes are ordered by the
// position of the icon in to, followed by icons removed from from.
func Diff(from, to *icons.Catalog) []Change {
	before := make(map[string]icons.Icon, from.Len())
	for _, icon := range from.Icons() {
		before[iconID(icon)] = icon
	}

	dmp := diffmatchpatch.New()
	var changes []Change
	seen := make(map[string]bool, to.Len())
	for _, icon := range to.Icons() {
		id := iconID(icon)
		seen[id] = true
		old, ok := before[id]
		if !ok {
			changes = append(changes, Change{ID: id, Kind: Added})
			continue
		}

		var fields []string
		if old.Category != icon.Category {
			fields = append(fields, "category")
		}
		if old.Description != icon.Description {
			fields = append(fields, "description")
		}
		if !slices.Equal(old.Glyphs, icon.Glyphs) {
			fields = append(fields, "glyphs")
		}
		var patch string
		if old.SVG != icon.SVG {
			fields = append(fields, "svg")
			diffs := dmp.DiffMain(string(old.SVG), string(icon.SVG), false)
			diffs = dmp.DiffCleanupSemantic(diffs)
			patch = dmp.PatchToText(dmp.PatchMake(string(old.SVG), diffs))
		}
		if len(fields) > 0 {
			changes = append(changes, Change{ID: id, Kind: Changed, Fields: fields, Patch: patch})
		}
	}

	for _, icon := range from.Icons() {
		if id := iconID(icon); !seen[id] {
			changes = append(changes, Change{ID: id, Kind: Removed})
		}
	}
	return changes
}

// FormatDiff writes one line per change, followed by the SVG patch if any.
func FormatDiff(changes []Change) string {
	if len(changes) == 0 {
		return "no changes\n"
	}
	var b strings.Builder
	for _, c := range changes {
		switch c.Kind {
		case Changed:
			fmt.Fprintf(&b, "~ %s (%s)\n", c.ID, strings.Join(c.Fields, ", "))
			if c.Patch != "" {
				b.WriteString(c.Patch)
			}
		case Added:
			fmt.Fprintf(&b, "+ %s\n", c.ID)
		case Removed:
			fmt.Fprintf(&b, "- %s\n", c.ID)
		}
	}
	return b.String()
}
