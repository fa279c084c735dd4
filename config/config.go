/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config reads iconregistry settings from the environment.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/logging"
	"github.com/suparena/iconregistry/registry"
)

// Source names accepted by ICONREG_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceSQLite   = "sqlite"
	SourceDynamoDB = "dynamodb"
)

// Config holds the runtime settings of the registry tooling.
type Config struct {
	Source     string `env:"ICONREG_SOURCE" envDefault:"embedded"`
	Duplicates string `env:"ICONREG_DUPLICATES" envDefault:"last-wins"`
	LogLevel   string `env:"ICONREG_LOG_LEVEL" envDefault:"info"`
	SQLitePath string `env:"ICONREG_SQLITE_PATH" envDefault:"icons.db"`

	AWSAccessKey string `env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `env:"AWS_SECRET_KEY"`
	AWSRegion    string `env:"AWS_REGION"`
	DynamoTable  string `env:"AWS_DDB_TABLE"`
}

// Load reads the given .env files, if they exist, and parses the
// environment. Variables already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that have a closed set of choices.
func (c Config) Validate() error {
	switch c.Source {
	case SourceEmbedded, SourceSQLite:
	case SourceDynamoDB:
		if c.DynamoTable == "" {
			return errors.NewValidationError("AWS_DDB_TABLE", "required for the dynamodb source")
		}
	default:
		return errors.NewValidationError("ICONREG_SOURCE", fmt.Sprintf("unknown source %q", c.Source))
	}
	if _, err := c.DuplicatePolicy(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// DuplicatePolicy parses the Duplicates setting.
func (c Config) DuplicatePolicy() (registry.DuplicatePolicy, error) {
	return ParseDuplicatePolicy(c.Duplicates)
}

// Level parses the LogLevel setting.
func (c Config) Level() (slog.Level, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return level, errors.NewValidationError("ICONREG_LOG_LEVEL", err.Error())
	}
	return level, nil
}

// ParseDuplicatePolicy maps "error" and "last-wins" to a registry policy.
func ParseDuplicatePolicy(s string) (registry.DuplicatePolicy, error) {
	p, err := registry.ParseDuplicatePolicy(s)
	if err != nil {
		return p, errors.NewValidationError("ICONREG_DUPLICATES", err.Error())
	}
	return p, nil
}
