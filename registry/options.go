/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"log/slog"
)

// DuplicatePolicy decides what New does when a key or glyph appears twice.
type DuplicatePolicy int

const (
	// DuplicateError fails construction on the first repeated key or glyph.
	DuplicateError DuplicatePolicy = iota
	// DuplicateLastWins keeps the later payload and the earlier position.
	DuplicateLastWins
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateError:
		return "error"
	case DuplicateLastWins:
		return "last-wins"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy accepts "error" or "last-wins".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "error":
		return DuplicateError, nil
	case "last-wins":
		return DuplicateLastWins, nil
	default:
		return DuplicateError, fmt.Errorf("unknown duplicate policy %q (want error or last-wins)", s)
	}
}

type options struct {
	policy DuplicatePolicy
	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithDuplicatePolicy sets how repeated keys and glyphs are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger sets the logger used to report overridden registrations.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
