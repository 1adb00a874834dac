package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DirOptions настраивают параллельное разворачивание каталога.
type DirOptions struct {
	MaxDiagnostics int
	Jobs           int    // 0 — по числу CPU
	OutDir         string // "" — рядом с исходником
	Cache          *DiskCache
}

// DirResult — результат по одному файлу каталога.
type DirResult struct {
	Path    string // путь к исходному *.defmod
	OutPath string // куда пойдёт сгенерированный код
	Result  *ExpandResult
}

// listDefmodFiles возвращает отсортированный список всех *.defmod в каталоге
func listDefmodFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".defmod") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandDir разворачивает все *.defmod файлы каталога параллельно.
// Каждый файл независим (конвейер однопроходный и без общего состояния),
// поэтому воркеры не синхронизируются ничем, кроме кэша.
func ExpandDir(ctx context.Context, root string, opts DirOptions) ([]DirResult, error) {
	files, err := listDefmodFiles(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]DirResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Expand(path, ExpandOptions{
				MaxDiagnostics: opts.MaxDiagnostics,
				Cache:          opts.Cache,
			})
			if err != nil {
				return fmt.Errorf("failed to expand %q: %w", path, err)
			}
			results[i] = DirResult{
				Path:    path,
				OutPath: OutPathFor(path, opts.OutDir),
				Result:  res,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
