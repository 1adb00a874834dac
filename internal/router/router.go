package router

// Роутер атрибутов: делит атрибуты модуля на «простые» и «путевые»
// (mutually exclusive) и строит итоговый список mod-деклараций.
//
// Взаимную исключительность путевых атрибутов роутер не проверяет и
// проверить не может: условия атрибутов интерпретирует host-компилятор.
// Это документированное допущение, а не упущение.

import (
	"strconv"
	"strings"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/emit"
)

// ModStmt — одна итоговая mod-декларация для host-компилятора.
type ModStmt struct {
	// CondAttr — путевой атрибут (дословно); "" для безусловной декларации.
	CondAttr string
	// Path — значение для `#[path = "..."]`; "" если директива не нужна.
	Path string
	// Plain — простые атрибуты, копируются на каждую декларацию.
	Plain []string
	Vis   ast.Visibility
	Name  string
}

// Route строит mod-декларации для одного модуля.
// Порядок — порядок объявления; пустые путевые значения репортятся и
// выбрасываются, остальные ветки не страдают.
func Route(decl *ast.ModuleDecl, r diag.Reporter) []ModStmt {
	var plain []string
	type pathed struct {
		attr string
		path string
	}
	var routed []pathed

	for _, attr := range decl.Attrs {
		if !attr.HasPath {
			plain = append(plain, attr.Text)
			continue
		}
		if attr.Path == "" {
			if r != nil {
				r.Report(diag.GenEmptyPathValue, diag.SevError, attr.PathSpan,
					"empty path value on module attribute", nil)
			}
			continue
		}
		routed = append(routed, pathed{
			attr: attr.Text,
			path: ExpandPath(decl.Name, attr.Path),
		})
	}

	if len(routed) == 0 {
		return []ModStmt{{Plain: plain, Vis: decl.Vis, Name: decl.Name}}
	}

	stmts := make([]ModStmt, 0, len(routed))
	for _, pa := range routed {
		stmts = append(stmts, ModStmt{
			CondAttr: pa.attr,
			Path:     pa.path,
			Plain:    plain,
			Vis:      decl.Vis,
			Name:     decl.Name,
		})
	}
	return stmts
}

// ExpandPath раскрывает тильду-сокращение в путевом значении:
// `~suffix` превращается в `<module>/<suffix>/mod.rs`, одиночная `~` —
// в `<module>/mod.rs`. Обычные пути возвращаются как есть.
func ExpandPath(moduleName, path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	suffix := path[1:]
	if suffix == "" {
		return moduleName + "/mod.rs"
	}
	return moduleName + "/" + suffix + "/mod.rs"
}

// Write печатает декларацию в host-синтаксисе: условный атрибут, путевая
// директива, простые атрибуты, затем сама mod-строка.
func (s ModStmt) Write(w *emit.Writer) {
	if s.CondAttr != "" {
		w.Line(s.CondAttr)
	}
	if s.Path != "" {
		w.Linef("#[path = %s]", strconv.Quote(s.Path))
	}
	for _, a := range s.Plain {
		w.Line(a)
	}
	if v := s.Vis.String(); v != "" {
		w.Linef("%s mod %s;", v, s.Name)
	} else {
		w.Linef("mod %s;", s.Name)
	}
}
