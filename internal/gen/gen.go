package gen

// Генератор ассершенов: из разобранных деклараций строит host-код, который
// заставляет компилятор проверить существование и сигнатуры экспортов.
// Сам генератор ничего не проверяет — он только печатает проверяемый код.

import (
	"fmt"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/emit"
	"defmod/internal/router"
	"defmod/internal/source"
)

// Stats — счётчики по результатам генерации (для сводки).
type Stats struct {
	Modules    int
	ModStmts   int
	Assertions int
}

// Generator держит состояние одного прохода генерации.
// Индекс ассершенов монотонный в пределах модуля: имена не сталкиваются,
// даже когда методы разных типов называются одинаково.
type Generator struct {
	w        *emit.Writer
	reporter diag.Reporter
	index    uint32
	stats    Stats
}

// File печатает весь вывод для списка модулей в порядке объявления.
func File(w *emit.Writer, modules []*ast.ModuleDecl, r diag.Reporter) Stats {
	g := &Generator{w: w, reporter: r}
	for i, m := range modules {
		if i > 0 {
			w.BlankLine()
		}
		g.module(m)
	}
	g.stats.Modules = len(modules)
	return g.stats
}

func (g *Generator) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if g.reporter != nil {
		g.reporter.Report(code, sev, sp, msg, nil)
	}
}

func (g *Generator) module(decl *ast.ModuleDecl) {
	stmts := router.Route(decl, g.reporter)
	for _, s := range stmts {
		s.Write(g.w)
	}
	g.stats.ModStmts += len(stmts)

	if decl.Body.Kind != ast.BodyContent || len(decl.Body.Items) == 0 {
		return
	}

	g.index = 0
	g.w.BlankLine()
	g.w.Line("#[allow(dead_code)]")
	g.w.Linef("fn __load_%s() {", decl.Name)
	g.w.Indent()
	for _, item := range decl.Body.Items {
		switch item.Kind {
		case ast.ItemMethod:
			g.methodAssertion(decl.Name, "", item.Method)
		case ast.ItemType:
			g.typeAssertion(decl.Name, item.Type)
		}
	}
	g.w.Dedent()
	g.w.Line("}")
}

// typeAssertion печатает scoped-блок: `use` проверяет существование и экспорт
// самого типа, дальше — по одному ассершену на метод.
func (g *Generator) typeAssertion(moduleName string, decl *ast.TypeDecl) {
	for _, a := range decl.Attrs {
		g.w.Line(a.Text)
	}
	g.w.Line("{")
	g.w.Indent()
	g.w.Linef("use self::%s::%s;", moduleName, decl.Name)
	for _, m := range decl.Body.Methods {
		g.methodAssertion(decl.Name, decl.Name, m)
	}
	g.w.Dedent()
	g.w.Line("}")
}

// methodAssertion печатает одну проверку: константу для обычного метода,
// вложенную никогда-не-вызываемую функцию для generic-метода (константа
// не может быть generic). Метод с телом — фатален для этого элемента,
// соседи не страдают.
func (g *Generator) methodAssertion(ctx, selfName string, m *ast.MethodDecl) {
	if m.BodySpan != nil {
		g.report(diag.GenMethodHasBody, diag.SevError, *m.BodySpan,
			fmt.Sprintf("method '%s' must not have a body in a declaration", m.Name))
		return
	}

	fnty := g.bareFnType(m, selfName)
	tyText := ast.TypeString(fnty)
	path := ctx + "::" + m.Name

	for _, a := range m.Attrs {
		g.w.Line(a.Text)
	}

	if m.IsGeneric() {
		header := fmt.Sprintf("fn _assert_method_%d%s()", g.index, m.Generics)
		if m.Where != "" {
			header += " " + m.Where
		}
		g.w.Line(header + " {")
		g.w.Indent()
		g.w.Linef("let _: %s = %s;", tyText, path)
		g.w.Dedent()
		g.w.Line("}")
	} else {
		g.w.Linef("const _ASSERT_METHOD_%d: %s = %s;", g.index, tyText, path)
	}
	g.index++
	g.stats.Assertions++
}
