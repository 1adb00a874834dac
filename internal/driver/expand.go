package driver

import (
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"

	"defmod/internal/diag"
	"defmod/internal/emit"
	"defmod/internal/gen"
	"defmod/internal/lexer"
	"defmod/internal/parser"
	"defmod/internal/source"
)

// GeneratedHeader предваряет каждый сгенерированный файл.
const GeneratedHeader = "// Code generated by defmod. DO NOT EDIT."

type ExpandOptions struct {
	MaxDiagnostics int
	Cache          *DiskCache // nil — без кэша
}

// ExpandResult — результат разворачивания одного файла деклараций.
// Output пустой, если в Bag есть ошибки: битый вход не порождает кода.
type ExpandResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Bag      *diag.Bag
	Output   []byte
	Stats    gen.Stats
	CacheHit bool
}

// Expand прогоняет один файл через весь конвейер:
// лексер → парсер → роутер → генератор.
func Expand(path string, opts ExpandOptions) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return expandFile(fs, fileID, opts)
}

// ExpandContent разворачивает содержимое, не читая его с диска (stdin, тесты).
func ExpandContent(name string, content []byte, opts ExpandOptions) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return expandFile(fs, fileID, opts)
}

func expandFile(fs *source.FileSet, fileID source.FileID, opts ExpandOptions) (*ExpandResult, error) {
	file := fs.Get(fileID)

	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(cacheKey(file.Hash), &payload)
		if err == nil && hit && payload.Schema == diskCacheSchemaVersion {
			return &ExpandResult{
				FileSet: fs,
				File:    file,
				Bag:     diag.NewBag(opts.MaxDiagnostics),
				Output:  payload.Output,
				Stats: gen.Stats{
					Modules:    payload.Modules,
					ModStmts:   payload.ModStmts,
					Assertions: payload.Assertions,
				},
				CacheHit: true,
			}, nil
		}
		// битую запись просто игнорируем и пересчитываем
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}
	parsed := parser.ParseFile(fs, lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	result := &ExpandResult{FileSet: fs, File: file, Bag: bag}
	if bag.HasErrors() {
		return result, nil
	}

	w := emit.NewWriter(emit.Options{})
	w.Line(GeneratedHeader)
	w.Newline()
	result.Stats = gen.File(w, parsed.Modules, reporter)

	// генератор тоже может найти ошибки (например, тело метода)
	if bag.HasErrors() {
		return result, nil
	}
	result.Output = w.Bytes()

	// кэшируем только полностью чистые прогоны
	if opts.Cache != nil && bag.Len() == 0 {
		_ = opts.Cache.Put(cacheKey(file.Hash), &DiskPayload{
			Schema:     diskCacheSchemaVersion,
			Path:       file.Path,
			Output:     result.Output,
			Modules:    result.Stats.Modules,
			ModStmts:   result.Stats.ModStmts,
			Assertions: result.Stats.Assertions,
		})
	}
	return result, nil
}

// OutPathFor строит путь результата: foo.defmod → foo.rs, с опциональной
// переадресацией в outDir.
func OutPathFor(inputPath, outDir string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, ".defmod") + ".rs"
	if outDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	return filepath.Join(outDir, base)
}

// WriteOutput записывает сгенерированный код на диск.
func (r *ExpandResult) WriteOutput(outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, r.Output, 0o644)
}
