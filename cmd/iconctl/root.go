/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/suparena/iconregistry"
	"github.com/suparena/iconregistry/config"
	"github.com/suparena/iconregistry/datastore/ddb"
	"github.com/suparena/iconregistry/datastore/sqlitestore"
	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/icons"
	"github.com/suparena/iconregistry/logging"
	"github.com/suparena/iconregistry/registry"
)

// app carries the resolved configuration between the root command and
// its subcommands.
type app struct {
	envFiles   []string
	source     string
	duplicates string
	logLevel   string

	cfg     config.Config
	policy  registry.DuplicatePolicy
	sources *iconregistry.SourceSet
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "iconctl",
		Short:         "Look up, render and publish SVG icon catalogues",
		Long:          `iconctl resolves emoji glyphs and symbolic icon keys to SVG markup, renders the catalogue as Markdown and publishes it to SQLite or DynamoDB.`,
		Version:       iconregistry.Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", []string{".env"}, "env files to load before reading the environment")
	flags.StringVar(&a.source, "source", "", "icon source: embedded, sqlite or dynamodb (default from ICONREG_SOURCE)")
	flags.StringVar(&a.duplicates, "duplicates", "", "duplicate key policy: error or last-wins (default from ICONREG_DUPLICATES)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (default from ICONREG_LOG_LEVEL)")

	root.AddCommand(
		newKeysCmd(a),
		newLookupCmd(a),
		newGlyphCmd(a),
		newReplaceCmd(a),
		newCatalogCmd(a),
		newPublishCmd(a),
		newDiffCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads configuration, applies flag overrides and installs the logger
// on the command context.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if a.source != "" {
		cfg.Source = a.source
	}
	if a.duplicates != "" {
		cfg.Duplicates = a.duplicates
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	policy, err := cfg.DuplicatePolicy()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.policy = policy
	a.sources = newSources(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	cmd.SetContext(logging.WithLogger(ctx, logger))
	logger.Debug("configuration loaded",
		slog.String("source", cfg.Source),
		slog.String("duplicates", policy.String()),
	)
	return nil
}

// newSources registers the persistent stores named in the configuration.
func newSources(cfg config.Config) *iconregistry.SourceSet {
	sources := iconregistry.NewSourceSet()
	_ = sources.Register(config.SourceSQLite, func(ctx context.Context) (iconregistry.Store, error) {
		return sqlitestore.Open(ctx, cfg.SQLitePath)
	})
	_ = sources.Register(config.SourceDynamoDB, func(ctx context.Context) (iconregistry.Store, error) {
		store, err := ddb.NewIconDataStore(ctx, ddb.Options{
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
			Region:    cfg.AWSRegion,
			Table:     cfg.DynamoTable,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	})
	return sources
}

// openStore opens the configured persistent store. The returned close
// function is never nil.
func (a *app) openStore(ctx context.Context) (iconregistry.Store, func(), error) {
	if a.cfg.Source == config.SourceEmbedded {
		return nil, nil, errors.NewValidationError("source", "the embedded source is read-only; choose sqlite or dynamodb")
	}
	store, err := a.sources.Open(ctx, a.cfg.Source)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {}
	if c, ok := store.(io.Closer); ok {
		closeFn = func() {
			if err := c.Close(); err != nil {
				logging.FromContext(ctx).Warn("close icon store", slog.Any("error", err))
			}
		}
	}
	return store, closeFn, nil
}

// load builds the registry and catalogue of the configured source.
func (a *app) load(ctx context.Context) (*registry.Registry, *icons.Catalog, error) {
	opts := []registry.Option{
		registry.WithDuplicatePolicy(a.policy),
		registry.WithLogger(logging.FromContext(ctx)),
	}
	if a.cfg.Source == config.SourceEmbedded {
		catalog, err := icons.Bundled()
		if err != nil {
			return nil, nil, err
		}
		reg, err := catalog.Registry(opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("build registry: %w", err)
		}
		return reg, catalog, nil
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer closeStore()
	return iconregistry.Load(ctx, store, opts...)
}
