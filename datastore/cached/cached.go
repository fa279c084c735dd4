/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package cached wraps a DataStore with an in-memory read-through cache.
//
// It serves long-lived consumers, such as a server that rebuilds its
// registry with iconregistry.Load on every request or on a timer. A
// one-shot process that loads once gains nothing from it.
package cached

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/suparena/iconregistry/datastore"
	"github.com/suparena/iconregistry/logging"
	"github.com/suparena/iconregistry/storagemodels"
)

// DefaultCleanupInterval is how often expired entries are purged.
const DefaultCleanupInterval = 30 * time.Minute

// Store caches GetOne and Query results of the wrapped store for ttl.
// Any successful write flushes the whole cache, since a Put can change the
// result of every Query.
type Store[T any] struct {
	next  datastore.DataStore[T]
	cache *gocache.Cache
}

// New wraps next with a cache whose entries live for ttl.
func New[T any](next datastore.DataStore[T], ttl time.Duration) *Store[T] {
	return &Store[T]{
		next:  next,
		cache: gocache.New(ttl, DefaultCleanupInterval),
	}
}

func oneKey(key string) string {
	return "one:" + key
}

func queryKey(params *storagemodels.QueryParams) (string, bool) {
	if params == nil {
		return "query:", true
	}
	// Paginated requests are not cached.
	if len(params.ExclusiveStartKey) > 0 {
		return "", false
	}
	key := "query:" + params.Collection
	if params.Limit != nil {
		key += fmt.Sprintf(":limit=%d", *params.Limit)
	}
	if params.IndexName != nil {
		key += ":index=" + *params.IndexName
	}
	return key, true
}

// GetOne serves key from the cache or the wrapped store.
func (s *Store[T]) GetOne(ctx context.Context, key string) (*T, error) {
	if v, found := s.cache.Get(oneKey(key)); found {
		if entity, ok := v.(T); ok {
			logging.FromContext(ctx).Debug("cache hit", slog.String("key", key))
			return &entity, nil
		}
	}

	entity, err := s.next.GetOne(ctx, key)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(oneKey(key), *entity)
	return entity, nil
}

// Query serves params from the cache or the wrapped store. Callers get
// their own copy of the result slice.
func (s *Store[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	key, cacheable := queryKey(params)
	if cacheable {
		if v, found := s.cache.Get(key); found {
			if results, ok := v.([]T); ok {
				logging.FromContext(ctx).Debug("cache hit", slog.String("key", key))
				return append([]T(nil), results...), nil
			}
		}
	}

	results, err := s.next.Query(ctx, params)
	if err != nil {
		return nil, err
	}
	if cacheable {
		s.cache.SetDefault(key, append([]T(nil), results...))
	}
	return results, nil
}

// Put writes through and flushes the cache.
func (s *Store[T]) Put(ctx context.Context, entity T) error {
	if err := s.next.Put(ctx, entity); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

// Delete writes through and flushes the cache.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	if err := s.next.Delete(ctx, key); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

// Close closes the wrapped store if it holds resources.
func (s *Store[T]) Close() error {
	s.cache.Flush()
	if c, ok := s.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
