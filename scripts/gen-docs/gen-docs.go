// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package main

//go:generate go run gen-docs.go --path ../../docs

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	pingcmd "github.com/telekom/sparrow-ping/cmd"
)

func main() {
	if err := newCmdGenDocs().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCmdGenDocs writes the reference of every sparrow-ping command.
func newCmdGenDocs() *cobra.Command {
	var (
		path   string
		format string
	)

	cmd := &cobra.Command{
		Use:          "gen-docs",
		Short:        "Generate the sparrow-ping command reference",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return generate(pingcmd.BuildCmd(""), path, format)
		},
	}
	cmd.Flags().StringVar(&path, "path", "docs", "output directory")
	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown or man")
	return cmd
}

func generate(root *cobra.Command, path, format string) error {
	root.DisableAutoGenTag = true
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	var err error
	switch format {
	case "markdown":
		err = doc.GenMarkdownTree(root, path)
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{Title: "SPARROW-PING", Section: "8"}, path)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s docs: %w", format, err)
	}
	return nil
}
