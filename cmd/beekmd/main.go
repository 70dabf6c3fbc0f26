// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Beekmd renders and diffs Gitbeek markdown documents.
//
// Usage:
//
//	beekmd render [file]           print an HTML fragment
//	beekmd export [file]           print a complete HTML document
//	beekmd diff <before> <after>   print a block-level content diff
//
// Each command reads the named file, or standard input when no file is
// given (diff requires both files).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	markdown "github.com/nasuf/gitbeek-sub000"
)

var (
	verbose   bool
	dark      bool
	title     string
	imagesArg string
)

func main() {
	root := &cobra.Command{
		Use:          "beekmd",
		Short:        "beekmd renders and diffs Gitbeek markdown documents",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	})

	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown to an HTML fragment",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().BoolVar(&dark, "dark", false, "use the dark code theme")
	renderCmd.Flags().StringVar(&imagesArg, "images", "", "JSON file mapping image sources to data URIs")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render markdown to a complete HTML document",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().BoolVar(&dark, "dark", false, "use the dark code theme")
	exportCmd.Flags().StringVar(&title, "title", "", "document title (default: first heading)")
	exportCmd.Flags().StringVar(&imagesArg, "images", "", "JSON file mapping image sources to data URIs")

	diffCmd := &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Diff two document revisions block by block",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiff,
	}

	root.AddCommand(renderCmd, exportCmd, diffCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadImageMap() (map[string]string, error) {
	if imagesArg == "" {
		return nil, nil
	}
	data, err := os.ReadFile(imagesArg)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing image map %s: %w", imagesArg, err)
	}
	return m, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	images, err := loadImageMap()
	if err != nil {
		return err
	}
	blocks := markdown.Parse(text)
	slog.Debug("parsed document", "blocks", len(blocks))
	_, err = fmt.Fprint(cmd.OutOrStdout(), markdown.ToHTML(blocks, dark, images))
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	images, err := loadImageMap()
	if err != nil {
		return err
	}
	blocks := markdown.Parse(text)
	slog.Debug("parsed document", "blocks", len(blocks))
	t := title
	if t == "" {
		t = documentTitle(blocks)
	}
	body := markdown.ToHTML(blocks, dark, images)
	_, err = fmt.Fprint(cmd.OutOrStdout(), markdown.WrapInHTML(body, t, dark))
	return err
}

// documentTitle picks the first heading's text as the export title,
// falling back to a fixed name for untitled documents.
func documentTitle(blocks []markdown.Block) string {
	for _, b := range blocks {
		if h, ok := b.(*markdown.Heading); ok {
			var sb strings.Builder
			for _, sp := range h.Text {
				sb.WriteString(sp.Text)
			}
			if sb.Len() > 0 {
				return sb.String()
			}
		}
	}
	return "Document"
}

func runDiff(cmd *cobra.Command, args []string) error {
	before, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	after, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	units := markdown.Diff(
		markdown.SplitBlocks(string(before)),
		markdown.SplitBlocks(string(after)),
	)
	slog.Debug("computed diff", "units", len(units))

	w := cmd.OutOrStdout()
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	for i, u := range units {
		if i > 0 {
			fmt.Fprintln(w)
		}
		switch u.Kind {
		case markdown.DiffAdded:
			added.Fprint(w, prefixLines("+ ", u.Text))
		case markdown.DiffRemoved:
			removed.Fprint(w, prefixLines("- ", u.Text))
		default:
			fmt.Fprint(w, prefixLines("  ", u.Text))
		}
	}
	return nil
}

func prefixLines(prefix, text string) string {
	var sb strings.Builder
	for _, ln := range strings.Split(text, "\n") {
		sb.WriteString(prefix)
		sb.WriteString(ln)
		sb.WriteByte('\n')
	}
	return sb.String()
}
