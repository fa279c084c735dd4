/*
Package iconregistry maps emoji glyphs and symbolic keys to SVG icon markup.

Two lookups are offered by registry.Registry:
  - Glyph lookup passes unknown input through unchanged, so it can be applied
    to arbitrary UI text (see Registry.ReplaceGlyphs)
  - Key lookup fails with errors.ErrUnknownKey when the key was never registered

The bundled icon set lives in package icons and is available without any I/O
through icons.Default(). Catalogues can also be published to and loaded from
a store (DynamoDB, SQLite) so a deployed application picks up new icons
without a rebuild.

Basic Usage:

	reg := icons.Default()
	svg, err := reg.Lookup(icons.Warning)
	label := reg.ReplaceGlyphs("⚠️ Disk almost full")

	// Load from a store
	sources := iconregistry.NewSourceSet()
	sources.Register("sqlite", func(ctx context.Context) (iconregistry.Store, error) {
	    return sqlitestore.Open(ctx, "icons.db")
	})
	store, _ := sources.Open(ctx, "sqlite")
	reg, catalog, err := iconregistry.Load(ctx, store,
	    registry.WithDuplicatePolicy(registry.DuplicateLastWins))
*/
package iconregistry
