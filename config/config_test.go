/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/registry"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"ICONREG_SOURCE", "ICONREG_DUPLICATES", "ICONREG_LOG_LEVEL", "ICONREG_SQLITE_PATH",
		"AWS_ACCESS_KEY", "AWS_SECRET_KEY", "AWS_REGION", "AWS_DDB_TABLE",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, cfg.Source)
	assert.Equal(t, "last-wins", cfg.Duplicates)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "icons.db", cfg.SQLitePath)
	require.NoError(t, cfg.Validate())

	policy, err := cfg.DuplicatePolicy()
	require.NoError(t, err)
	assert.Equal(t, registry.DuplicateLastWins, policy)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICONREG_SOURCE", "dynamodb")
	t.Setenv("ICONREG_DUPLICATES", "error")
	t.Setenv("ICONREG_LOG_LEVEL", "debug")
	t.Setenv("AWS_DDB_TABLE", "icons")
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "icons", cfg.DynamoTable)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICONREG_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ICONREG_SOURCE=sqlite\nICONREG_SQLITE_PATH=/tmp/catalog.db\nICONREG_LOG_LEVEL=error\n"), 0o600))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, SourceSQLite, cfg.Source)
	assert.Equal(t, "/tmp/catalog.db", cfg.SQLitePath)
	// The environment wins over the file
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := Config{Source: SourceEmbedded, Duplicates: "error", LogLevel: "info"}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown source", func(c *Config) { c.Source = "redis" }, "ICONREG_SOURCE"},
		{"dynamodb without table", func(c *Config) { c.Source = SourceDynamoDB }, "AWS_DDB_TABLE"},
		{"unknown policy", func(c *Config) { c.Duplicates = "first-wins" }, "ICONREG_DUPLICATES"},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "ICONREG_LOG_LEVEL"},
	}

	require.NoError(t, valid.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
