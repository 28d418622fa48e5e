// ABOUTME: CLI commands for exporting and importing scorecard data.
// ABOUTME: Supports JSON, YAML, and Markdown export; JSON and YAML import.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/scorecard/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export scorecard data",
	Long: `Export every stored week.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown table of raw inputs and derived indices

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  scorecard export json                  # Export all weeks as JSON
  scorecard export json -o backup.json   # Save to file
  scorecard export yaml                  # Export as YAML
  scorecard export markdown              # Markdown summary`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml":
			data, err = storage.ExportYAML(repo)
		case "markdown":
			var md string
			md, err = storage.ExportMarkdown(repo)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import scorecard data from JSON or YAML",
	Long: `Import weeks from a previously exported JSON or YAML file.

Files ending in .yaml or .yml are read as YAML; anything else as JSON.
Imported weeks replace stored weeks with the same number, so importing
the same file twice is harmless. Derived indices are imported as stored;
run 'scorecard recompute' to re-derive them against the current week 1.

EXAMPLES:

  scorecard import backup.json
  scorecard import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var n int
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			n, err = storage.ImportYAML(repo, data)
		default:
			n, err = storage.ImportJSON(repo, data)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d week(s) from %s", n, filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
