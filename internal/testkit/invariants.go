package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/emit"
	"defmod/internal/lexer"
	"defmod/internal/parser"
	"defmod/internal/router"
	"defmod/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on parsed modules:
// 1) every module span is non-empty and within file content bounds
// 2) NameSpan sits inside the module span
func CheckSpanInvariants(modules []*ast.ModuleDecl, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	for _, m := range modules {
		sp := m.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty module span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("module span points to different file id: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("module span end beyond content: %d > %d", sp.End, lenContent)
		}
		if m.NameSpan.Start < sp.Start || m.NameSpan.End > sp.End {
			return fmt.Errorf("name span %v escapes module span %v", m.NameSpan, sp)
		}
	}
	return nil
}

// CheckModRoundTrip проверяет раундтрип роутера: отрендеренные
// mod-декларации обязаны быть синтаксически валидным входом для парсера
// деклараций — для любой комбинации простых и путевых атрибутов.
func CheckModRoundTrip(stmts []router.ModStmt) error {
	w := emit.NewWriter(emit.Options{})
	for _, s := range stmts {
		s.Write(w)
	}

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("roundtrip.defmod", w.Bytes())
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	res := parser.ParseFile(fs, lx, parser.Options{MaxErrors: 64, Reporter: reporter})

	if bag.HasErrors() {
		return fmt.Errorf("re-parse failed: %v (output %q)", bag.Items(), w.String())
	}
	if len(res.Modules) != len(stmts) {
		return fmt.Errorf("re-parse produced %d declarations, want %d", len(res.Modules), len(stmts))
	}
	for i, m := range res.Modules {
		if m.Name != stmts[i].Name {
			return fmt.Errorf("declaration %d renamed: got %q, want %q", i, m.Name, stmts[i].Name)
		}
	}
	return nil
}
