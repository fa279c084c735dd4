/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suparena/iconregistry"
	"github.com/suparena/iconregistry/docgen"
	"github.com/suparena/iconregistry/icons"
	"github.com/suparena/iconregistry/registry"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every icon key in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, _, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range reg.Keys() {
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
}

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup KEY",
		Short: "Print the SVG markup of an icon key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			svg, err := reg.Lookup(registry.Key(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), svg)
			return nil
		},
	}
}

func newGlyphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "glyph GLYPH",
		Short: "Print the SVG markup for an emoji, or the emoji itself when unmapped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reg.LookupGlyph(args[0]))
			return nil
		},
	}
}

func newReplaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace [TEXT...]",
		Short: "Replace every mapped emoji in TEXT (or stdin) with its SVG markup",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			fmt.Fprint(cmd.OutOrStdout(), reg.ReplaceGlyphs(text))
			if len(args) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newCatalogCmd(a *app) *cobra.Command {
	var (
		glyphs bool
		render bool
		width  int
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Render the icon catalogue as Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, catalog, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			md := docgen.Markdown(catalog)
			if glyphs {
				md = docgen.GlyphTable(reg, catalog)
			}
			if render {
				md, err = docgen.Render(md, width)
				if err != nil {
					return fmt.Errorf("render markdown: %w", err)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		},
	}
	cmd.Flags().BoolVar(&glyphs, "glyphs", false, "render the glyph replacement table instead")
	cmd.Flags().BoolVar(&render, "render", false, "style the Markdown for the terminal")
	cmd.Flags().IntVar(&width, "width", 100, "word wrap width when rendering")
	return cmd
}

func newPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Write the bundled catalogue to the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			catalog, err := icons.Bundled()
			if err != nil {
				return err
			}
			// Refuse to publish a catalogue the configured policy cannot load.
			if _, err := catalog.Registry(registry.WithDuplicatePolicy(a.policy)); err != nil {
				return err
			}

			store, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			n, err := iconregistry.Publish(ctx, store, catalog)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %d icons to %s\n", n, a.cfg.Source)
			return nil
		},
	}
}

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show how the configured store differs from the bundled catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bundled, err := icons.Bundled()
			if err != nil {
				return err
			}
			_, stored, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), docgen.FormatDiff(docgen.Diff(stored, bundled)))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			info := iconregistry.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "iconctl version %s\n", info.Version)
			fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
		},
	}
}
