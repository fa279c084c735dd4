/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/suparena/iconregistry/datastore"
	"github.com/suparena/iconregistry/datastore/mock"
	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/storagemodels"
)

var _ datastore.DataStore[storagemodels.IconRecord] = (*mock.DataStore[storagemodels.IconRecord])(nil)

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		store := mock.NewIconStore()

		rec := storagemodels.IconRecord{Key: "warning", Collection: "emoji", SVG: "<svg/>"}
		if err := store.Put(ctx, rec); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		retrieved, err := store.GetOne(ctx, "emoji/warning")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if retrieved.Key != "warning" || retrieved.SVG != "<svg/>" {
			t.Fatalf("Retrieved record mismatch: %+v", retrieved)
		}

		if err := store.Delete(ctx, "emoji/warning"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		_, err = store.GetOne(ctx, "emoji/warning")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}

		if err := store.Delete(ctx, "emoji/warning"); !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error on second delete, got: %v", err)
		}
	})

	t.Run("EmptyKeyRejected", func(t *testing.T) {
		store := mock.NewIconStore()
		err := store.Put(ctx, storagemodels.IconRecord{Key: "warning", SVG: "<svg/>"})
		if !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got: %v", err)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		store := mock.NewIconStore()

		putErr := errors.NewValidationError("svg", "required")
		store.WithPutError(putErr)
		if err := store.Put(ctx, storagemodels.IconRecord{Key: "x", Collection: "ui"}); err != putErr {
			t.Fatalf("Expected put error, got: %v", err)
		}

		deleteErr := errors.NewConditionFailedError("delete", "version mismatch")
		store.WithDeleteError(deleteErr)
		if err := store.Delete(ctx, "ui/x"); err != deleteErr {
			t.Fatalf("Expected delete error, got: %v", err)
		}

		queryErr := errors.NewNotFoundError("table", "icons")
		store.WithQueryError(queryErr)
		if _, err := store.Query(ctx, nil); err != queryErr {
			t.Fatalf("Expected query error, got: %v", err)
		}
	})

	t.Run("QueryOrderAndLimit", func(t *testing.T) {
		store := mock.NewIconStore()
		for _, k := range []string{"search", "camera", "globe"} {
			if err := store.Put(ctx, storagemodels.IconRecord{Key: k, Collection: "emoji", SVG: "<svg/>"}); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
		}

		all, err := store.Query(ctx, nil)
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(all) != 3 || all[0].Key != "camera" || all[2].Key != "search" {
			t.Fatalf("Unexpected query order: %+v", all)
		}

		limited, err := store.Query(ctx, &storagemodels.QueryParams{Limit: aws.Int32(2)})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(limited) != 2 {
			t.Fatalf("Expected 2 results, got %d", len(limited))
		}
	})

	t.Run("QueryByCollection", func(t *testing.T) {
		store := mock.NewIconStore()
		for _, rec := range []storagemodels.IconRecord{
			{Key: "link", Collection: "emoji", SVG: "<svg/>"},
			{Key: "lock", Collection: "emoji", SVG: "<svg/>"},
			{Key: "link", Collection: "ui", SVG: "<svg/>"},
		} {
			if err := store.Put(ctx, rec); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
		}

		ui, err := store.Query(ctx, &storagemodels.QueryParams{Collection: "ui"})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(ui) != 1 || ui[0].ID() != "ui/link" {
			t.Fatalf("Expected only ui/link, got %+v", ui)
		}

		emoji, err := store.Query(ctx, &storagemodels.QueryParams{Collection: "emoji", Limit: aws.Int32(1)})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(emoji) != 1 || emoji[0].Collection != "emoji" {
			t.Fatalf("Expected one emoji record, got %+v", emoji)
		}

		none, err := store.Query(ctx, &storagemodels.QueryParams{Collection: "missing"})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(none) != 0 {
			t.Fatalf("Expected no records, got %+v", none)
		}
	})

	t.Run("CustomQuery", func(t *testing.T) {
		store := mock.NewIconStore().WithQueryFunc(
			func(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.IconRecord, error) {
				return []storagemodels.IconRecord{{Key: params.Collection}}, nil
			})

		res, err := store.Query(ctx, &storagemodels.QueryParams{Collection: "ui"})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(res) != 1 || res[0].Key != "ui" {
			t.Fatalf("Custom query not used: %+v", res)
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		store := mock.NewIconStore()
		store.SetData(map[string]storagemodels.IconRecord{
			"a": {Key: "a"},
			"b": {Key: "b"},
		})
		if store.Count() != 2 {
			t.Fatalf("Expected count 2, got %d", store.Count())
		}
		data := store.GetData()
		delete(data, "a")
		if store.Count() != 2 {
			t.Fatal("GetData should return a copy")
		}
		store.Clear()
		if store.Count() != 0 {
			t.Fatal("Clear should remove all data")
		}
	})
}
