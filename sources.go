/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package iconregistry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/iconregistry/datastore"
	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/storagemodels"
)

// Store is a persistent home for icon records.
type Store = datastore.DataStore[storagemodels.IconRecord]

// OpenFunc connects to a store. The returned store may implement io.Closer.
type OpenFunc func(ctx context.Context) (Store, error)

// SourceSet is a thread-safe set of named store openers.
type SourceSet struct {
	mu      sync.RWMutex
	openers map[string]OpenFunc
}

// NewSourceSet creates an empty SourceSet.
func NewSourceSet() *SourceSet {
	return &SourceSet{
		openers: make(map[string]OpenFunc),
	}
}

// Register adds an opener under name.
func (s *SourceSet) Register(name string, open OpenFunc) error {
	if name == "" || open == nil {
		return errors.NewValidationError("name", "source name and opener are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.openers[name]; exists {
		return errors.NewAlreadyExistsError("icon source", name)
	}
	s.openers[name] = open
	return nil
}

// Remove deletes the opener registered under name.
func (s *SourceSet) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.openers[name]; !exists {
		return errors.NewNotFoundError("icon source", name)
	}
	delete(s.openers, name)
	return nil
}

// Open connects to the store registered under name.
func (s *SourceSet) Open(ctx context.Context, name string) (Store, error) {
	s.mu.RLock()
	open, exists := s.openers[name]
	s.mu.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("icon source", name)
	}
	store, err := open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open icon source %q: %w", name, err)
	}
	return store, nil
}

// Names returns the registered source names in sorted order.
func (s *SourceSet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.openers))
	for name := range s.openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
