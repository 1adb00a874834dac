package driver

import (
	"fortio.org/safecast"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/lexer"
	"defmod/internal/parser"
	"defmod/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Modules []*ast.ModuleDecl
	Bag     *diag.Bag
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.ParseFile(fs, lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Modules: result.Modules,
		Bag:     bag,
	}, nil
}
