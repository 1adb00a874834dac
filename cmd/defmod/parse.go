package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"defmod/internal/diagfmt"
	"defmod/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.defmod",
	Short: "Parse a declaration file and output its structure",
	Long:  `Parse analyzes a declaration file and outputs the parsed module declarations without generating code`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	diagFormat, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		switch diagFormat {
		case "pretty":
			opts := diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			}
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		case "json":
			jsonOpts := diagfmt.JSONOpts{
				IncludePositions: true,
				Max:              maxDiagnostics,
				IncludeNotes:     true,
			}
			if err := diagfmt.JSON(os.Stderr, result.Bag, result.FileSet, jsonOpts); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown diag-format: %s", diagFormat)
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatModulesPretty(os.Stdout, result.Modules, result.FileSet)
	case "json":
		return diagfmt.FormatModulesJSON(os.Stdout, result.Modules)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
