/*
Package datastore defines the persistence interface for published icon catalogues.

The main interface is DataStore[T], which provides generic CRUD operations:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	    Delete(ctx context.Context, key string) error
	}

Implementations:
  - ddb: DynamoDB implementation with single-table key templates
  - sqlitestore: SQLite implementation for local catalogue files
  - mock: In-memory mock implementation for testing

GetOne and Delete return an errors.NotFoundError when the key is absent.
*/
package datastore
