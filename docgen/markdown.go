/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docgen

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"

	"github.com/suparena/iconregistry/icons"
	"github.com/suparena/iconregistry/registry"
)

// noMarginStyle removes glamour's document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Markdown renders the catalogue as one table row per icon, in catalogue order.
func Markdown(c *icons.Catalog) string {
	rows := make([][]string, 0, c.Len())
	for _, icon := range c.Icons() {
		glyphs := make([]string, 0, len(icon.Glyphs))
		for _, g := range icon.Glyphs {
			glyphs = append(glyphs, string(g))
		}
		rows = append(rows, []string{
			"`" + string(icon.Key) + "`",
			icon.Collection,
			icon.Category,
			strings.Join(glyphs, " "),
			icon.Description,
		})
	}

	var b strings.Builder
	b.WriteString("# Icons\n\n")
	writeTable(&b, []string{"Key", "Collection", "Category", "Glyphs", "Description"}, rows)
	return b.String()
}

// GlyphTable renders the glyph replacement table of r. Each glyph is shown
// with the key of the catalogue icon that declares it, or "-" when no icon
// of c does. When several icons declare a glyph the last one is shown,
// as last-wins registration keeps the last one's markup.
func GlyphTable(r *registry.Registry, c *icons.Catalog) string {
	keyByGlyph := make(map[registry.Glyph]registry.Key)
	for _, icon := range c.Icons() {
		for _, g := range icon.Glyphs {
			keyByGlyph[g] = icon.Key
		}
	}

	rows := make([][]string, 0, len(r.Glyphs()))
	for _, g := range r.Glyphs() {
		key := "-"
		if k, ok := keyByGlyph[g]; ok {
			key = "`" + string(k) + "`"
		}
		rows = append(rows, []string{string(g), key})
	}

	var b strings.Builder
	b.WriteString("# Glyph replacements\n\n")
	writeTable(&b, []string{"Glyph", "Key"}, rows)
	return b.String()
}

// Render styles Markdown for a terminal of the given width.
func Render(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

// writeTable writes a pipe table with columns padded to their display
// width, so emoji cells line up in a plain text editor too.
func writeTable(b *strings.Builder, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(escapeCell(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(escapeCell(cell), widths[i]))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
