package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"defmod/internal/diagfmt"
	"defmod/internal/driver"
	"defmod/internal/project"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] [file.defmod|directory]",
	Short: "Expand declaration files into generated code",
	Long: `Expand processes *.defmod declaration files and writes the generated
mod statements and signature assertions next to the source (or into --out-dir).
Without arguments the project is discovered via defmod.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().Bool("stdout", false, "print generated code to stdout instead of writing files")
	expandCmd.Flags().String("out-dir", "", "directory for generated files (default: next to source)")
	expandCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	expandCmd.Flags().Bool("summary", false, "print a per-file statistics table")
	expandCmd.Flags().Bool("no-cache", false, "disable the on-disk expansion cache")
}

// expandTarget описывает, что именно разворачиваем: один файл или каталог.
type expandTarget struct {
	path   string
	isDir  bool
	outDir string
	jobs   int
}

func runExpand(cmd *cobra.Command, args []string) error {
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	showSummary, err := cmd.Flags().GetBool("summary")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	target, err := resolveExpandTarget(cmd, args)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !noCache && !viper.GetBool(cacheDisableKey) {
		cache, err = driver.OpenDiskCache(configBaseName)
		if err != nil {
			// без кэша работать можно, просто медленнее
			slog.Warn("disk cache unavailable", "error", err)
			cache = nil
		}
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}

	var results []driver.DirResult
	if target.isDir {
		opts := driver.DirOptions{
			MaxDiagnostics: maxDiagnostics,
			Jobs:           target.jobs,
			OutDir:         target.outDir,
			Cache:          cache,
		}
		results, err = driver.ExpandDir(cmd.Context(), target.path, opts)
		if err != nil {
			return fmt.Errorf("expansion failed: %w", err)
		}
	} else {
		res, expandErr := driver.Expand(target.path, driver.ExpandOptions{
			MaxDiagnostics: maxDiagnostics,
			Cache:          cache,
		})
		if expandErr != nil {
			return fmt.Errorf("expansion failed: %w", expandErr)
		}
		results = []driver.DirResult{{
			Path:    target.path,
			OutPath: driver.OutPathFor(target.path, target.outDir),
			Result:  res,
		}}
	}

	failed := 0
	for _, r := range results {
		bag := r.Result.Bag
		if bag.Len() > 0 {
			bag.Sort()
			diagfmt.Pretty(os.Stderr, bag, r.Result.FileSet, prettyOpts)
		}
		if bag.HasErrors() {
			failed++
			continue
		}
		if r.Result.CacheHit {
			slog.Debug("cache hit", "path", r.Path)
		}
		if toStdout {
			if _, err := os.Stdout.Write(r.Result.Output); err != nil {
				return err
			}
			continue
		}
		if err := r.Result.WriteOutput(r.OutPath); err != nil {
			return fmt.Errorf("failed to write %q: %w", r.OutPath, err)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "%s -> %s\n", r.Path, r.OutPath)
		}
	}

	if showSummary {
		printExpandSummary(os.Stdout, results)
	}

	if failed > 0 {
		return fmt.Errorf("expansion failed for %d of %d file(s)", failed, len(results))
	}
	return nil
}

// resolveExpandTarget выбирает цель: явный аргумент или проект из defmod.toml.
func resolveExpandTarget(cmd *cobra.Command, args []string) (expandTarget, error) {
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return expandTarget{}, err
	}
	if outDir == "" {
		outDir = viper.GetString(expandOutDirKey)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return expandTarget{}, err
	}
	if jobs == 0 {
		jobs = viper.GetInt(expandJobsKey)
	}

	if len(args) == 1 {
		st, statErr := os.Stat(args[0])
		if statErr != nil {
			return expandTarget{}, fmt.Errorf("failed to stat path: %w", statErr)
		}
		return expandTarget{path: args[0], isDir: st.IsDir(), outDir: outDir, jobs: jobs}, nil
	}

	manifest, manifestPath, err := project.Discover(".")
	if err != nil {
		return expandTarget{}, err
	}
	if manifest == nil {
		return expandTarget{}, fmt.Errorf("no defmod.toml found; pass a file or directory explicitly")
	}
	slog.Debug("using project manifest", "path", manifestPath)

	if outDir == "" {
		outDir = manifest.OutDirFor()
	}
	if jobs == 0 {
		jobs = manifest.Expand.Jobs
	}
	return expandTarget{path: manifest.Dir, isDir: true, outDir: outDir, jobs: jobs}, nil
}

// printExpandSummary печатает таблицу статистики по файлам.
func printExpandSummary(w *os.File, results []driver.DirResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Modules", "Mod Stmts", "Assertions", "Cache"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var totalModules, totalStmts, totalAssertions int
	for _, r := range results {
		stats := r.Result.Stats
		cacheCol := ""
		switch {
		case r.Result.Bag.HasErrors():
			cacheCol = "error"
		case r.Result.CacheHit:
			cacheCol = "hit"
		}
		table.Append([]string{
			r.Path,
			fmt.Sprintf("%d", stats.Modules),
			fmt.Sprintf("%d", stats.ModStmts),
			fmt.Sprintf("%d", stats.Assertions),
			cacheCol,
		})
		totalModules += stats.Modules
		totalStmts += stats.ModStmts
		totalAssertions += stats.Assertions
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", totalModules),
		fmt.Sprintf("%d", totalStmts),
		fmt.Sprintf("%d", totalAssertions),
		"",
	})
	table.Render()
}
