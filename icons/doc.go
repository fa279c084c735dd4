/*
Package icons holds the bundled SVG icon catalogue and builds registries from it.

Icons are authored as YAML manifests embedded in the binary:

	collection: emoji
	icons:
	  - key: warning
	    category: status
	    glyphs: ["⚠️"]
	    svg: |-
	      <svg …>…</svg>

Bundled parses the embedded manifests (emoji first, then ui) into a
Catalog, and Catalog.Registry turns any catalogue into an immutable
registry. Default is the process-wide registry for the bundled data:

	svg := icons.Default().MustLookup(icons.Warning)
	html := icons.Default().ReplaceGlyphs("⚠️ Offline")

Catalogues also convert to and from storagemodels.IconRecord so they can
be published to a datastore.
*/
package icons
