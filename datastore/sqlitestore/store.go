/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package sqlitestore provides a SQLite-backed DataStore for icon records.
package sqlitestore

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-openapi/strfmt"
	_ "modernc.org/sqlite"

	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/logging"
	"github.com/suparena/iconregistry/storagemodels"
)

//go:embed schema.sql
var schema string

const recordType = "icon record"

// Store persists icon records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path, creating the schema if needed.
// ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewValidationError("path", "storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// An in-memory database lives only as long as its connection.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logging.FromContext(ctx).Info("SQLite icon store opened", slog.String("path", path))
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

const selectColumns = `SELECT collection, key, category, description, glyphs, svg, position, updated_at FROM icon_records`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (storagemodels.IconRecord, error) {
	var (
		rec       storagemodels.IconRecord
		glyphs    string
		updatedAt sql.NullString
	)
	if err := row.Scan(&rec.Collection, &rec.Key, &rec.Category, &rec.Description, &glyphs, &rec.SVG, &rec.Position, &updatedAt); err != nil {
		return rec, err
	}
	if err := json.Unmarshal([]byte(glyphs), &rec.Glyphs); err != nil {
		return rec, fmt.Errorf("decode glyphs of %s: %w", rec.ID(), err)
	}
	if len(rec.Glyphs) == 0 {
		rec.Glyphs = nil
	}
	if updatedAt.Valid && updatedAt.String != "" {
		dt, err := strfmt.ParseDateTime(updatedAt.String)
		if err != nil {
			return rec, fmt.Errorf("decode updated_at of %s: %w", rec.ID(), err)
		}
		rec.UpdatedAt = &storagemodels.Timestamp{DateTime: dt}
	}
	return rec, nil
}

// GetOne returns the record with the given ID ("collection/key").
func (s *Store) GetOne(ctx context.Context, key string) (*storagemodels.IconRecord, error) {
	collection, iconKey, err := storagemodels.ParseID(key)
	if err != nil {
		return nil, err
	}
	row := s.sqlDB.QueryRowContext(ctx, selectColumns+` WHERE collection = ? AND key = ?`, collection, iconKey)
	rec, err := scanRecord(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFoundError(recordType, key)
	}
	if err != nil {
		return nil, fmt.Errorf("get icon record: %w", err)
	}
	return &rec, nil
}

// Put inserts rec or replaces the record with the same ID.
func (s *Store) Put(ctx context.Context, rec storagemodels.IconRecord) error {
	if rec.Collection == "" || rec.Key == "" {
		return errors.NewValidationError("id", "collection and key are required")
	}
	if rec.SVG == "" {
		return errors.NewValidationError("svg", "must not be empty")
	}
	glyphs := rec.Glyphs
	if glyphs == nil {
		glyphs = []string{}
	}
	encoded, err := json.Marshal(glyphs)
	if err != nil {
		return fmt.Errorf("encode glyphs: %w", err)
	}
	var updatedAt sql.NullString
	if rec.UpdatedAt != nil {
		updatedAt = sql.NullString{String: rec.UpdatedAt.String(), Valid: true}
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO icon_records (collection, key, category, description, glyphs, svg, position, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (collection, key) DO UPDATE SET
		   category = excluded.category,
		   description = excluded.description,
		   glyphs = excluded.glyphs,
		   svg = excluded.svg,
		   position = excluded.position,
		   updated_at = excluded.updated_at`,
		rec.Collection, rec.Key, rec.Category, rec.Description, string(encoded), rec.SVG, rec.Position, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("put icon record: %w", err)
	}
	return nil
}

// Query lists records ordered by position, optionally restricted to one
// collection and capped by Limit.
func (s *Store) Query(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.IconRecord, error) {
	query := selectColumns
	var args []any
	if params != nil && params.Collection != "" {
		query += ` WHERE collection = ?`
		args = append(args, params.Collection)
	}
	query += ` ORDER BY position, collection, key`
	if params != nil && params.Limit != nil && *params.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, *params.Limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query icon records: %w", err)
	}
	defer rows.Close()

	var out []storagemodels.IconRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan icon record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate icon records: %w", err)
	}
	return out, nil
}

// Delete removes the record with the given ID.
func (s *Store) Delete(ctx context.Context, key string) error {
	collection, iconKey, err := storagemodels.ParseID(key)
	if err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM icon_records WHERE collection = ? AND key = ?`, collection, iconKey)
	if err != nil {
		return fmt.Errorf("delete icon record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete icon record: %w", err)
	}
	if n == 0 {
		return errors.NewNotFoundError(recordType, key)
	}
	return nil
}
