/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package iconregistry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/icons"
	"github.com/suparena/iconregistry/logging"
	"github.com/suparena/iconregistry/registry"
	"github.com/suparena/iconregistry/storagemodels"
)

// Load reads every record from store and builds a registry from them.
// Records are ordered by Position, then Collection, then Key, so the
// registry enumerates keys in the order the catalogue was published.
func Load(ctx context.Context, store Store, opts ...registry.Option) (*registry.Registry, *icons.Catalog, error) {
	records, err := store.Query(ctx, &storagemodels.QueryParams{})
	if err != nil {
		return nil, nil, fmt.Errorf("query icon records: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if a.Collection != b.Collection {
			return a.Collection < b.Collection
		}
		return a.Key < b.Key
	})

	catalog := icons.FromRecords(records)
	opts = append([]registry.Option{registry.WithLogger(logging.FromContext(ctx))}, opts...)
	reg, err := catalog.Registry(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("build registry: %w", err)
	}

	logging.FromContext(ctx).Debug("icon registry loaded",
		slog.Int("records", len(records)),
		slog.Int("keys", reg.Len()),
	)
	return reg, catalog, nil
}

// Publish makes store hold exactly the icons of catalog: every icon is
// written with a fresh UpdatedAt, then records the catalogue no longer has
// are deleted. It returns the number of records written before any failure.
func Publish(ctx context.Context, store Store, catalog *icons.Catalog) (int, error) {
	now := storagemodels.NewTimestamp(time.Now().UTC())
	records := catalog.Records()
	keep := make(map[string]bool, len(records))
	written := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		rec.UpdatedAt = now
		if err := store.Put(ctx, rec); err != nil {
			return written, fmt.Errorf("publish %s: %w", rec.ID(), err)
		}
		keep[rec.ID()] = true
		written++
	}

	removed, err := prune(ctx, store, keep)
	if err != nil {
		return written, err
	}

	logging.FromContext(ctx).Info("icon catalogue published",
		slog.Int("records", written),
		slog.Int("removed", removed),
	)
	return written, nil
}

// prune deletes every stored record whose ID is not in keep.
func prune(ctx context.Context, store Store, keep map[string]bool) (int, error) {
	stored, err := store.Query(ctx, &storagemodels.QueryParams{})
	if err != nil {
		return 0, fmt.Errorf("list stored icon records: %w", err)
	}
	removed := 0
	for _, rec := range stored {
		if rec.Key == "" || rec.Collection == "" {
			continue
		}
		id := rec.ID()
		if keep[id] {
			continue
		}
		if err := store.Delete(ctx, id); err != nil && !errors.IsNotFound(err) {
			return removed, fmt.Errorf("remove retired icon %s: %w", id, err)
		}
		logging.FromContext(ctx).Debug("retired icon removed", slog.String("id", id))
		removed++
	}
	return removed, nil
}
