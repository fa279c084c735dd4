/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "ICON#{Collection}#{Key}")
  - Collection queries on a Global Secondary Index (CollectionIndex)
  - Paginated scans, filtered to the layout's constant sort key
  - Conditional creates that refuse to overwrite

Key Layout:
Icon records use IconIndexMap. Macros are replaced with record fields:

	IconIndexMap = map[string]string{
	    "PK":  "ICON#{Collection}#{Key}", // ICON#emoji#warning
	    "SK":  "ICON",                    // Static value
	    "PK1": "COLLECTION#{Collection}", // GSI1 partition
	    "SK1": "ICON#{Key}",              // GSI1 sort
	}

String keys passed to GetOne and Delete are record IDs ("emoji/warning"),
split into macro fields by IconKeyFields.

Usage:

	store, err := ddb.NewIconDataStore(ctx, ddb.Options{
	    Region: "us-east-1",
	    Table:  "icons",
	})
	records, err := store.Query(ctx, &storagemodels.QueryParams{Collection: "ui"})
*/
package ddb
