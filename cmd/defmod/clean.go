package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"defmod/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the on-disk expansion cache",
	Long:  "Remove all cached expansion results. The next run recomputes everything from source.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache(configBaseName)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "expansion cache cleared")
	return nil
}
