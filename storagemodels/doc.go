/*
Package storagemodels defines the data structures shared by the icon stores.

Key Types:

IconRecord:
The persisted form of one catalogue icon:

	rec := storagemodels.IconRecord{
	    Key:        "warning",
	    Collection: "emoji",
	    Category:   "status",
	    Glyphs:     []string{"⚠️"},
	    SVG:        `<svg …>…</svg>`,
	}

QueryParams:
Parameters for listing records:

	params := &storagemodels.QueryParams{
	    Collection: "ui",
	    Limit:      aws.Int32(50),
	}

These types provide a consistent interface across the storage implementations.
*/
package storagemodels
