package ast

import "defmod/internal/source"

// Attr описывает атрибут модуля или метода: `#[...]`, опционально с путевым
// значением `#[...] = "path"`. Text хранит исходный вид `#[...]` дословно —
// роутер и генератор копируют атрибуты, не интерпретируя их содержимое.
type Attr struct {
	Text     string
	Path     string // раскавыченное путевое значение; "" если атрибут простой
	HasPath  bool
	Span     source.Span
	PathSpan source.Span // span строкового литерала (для диагностик)
}

// ModuleDecl — одна декларация модуля: атрибуты, видимость, имя, тело.
type ModuleDecl struct {
	Attrs []Attr
	Vis   Visibility
	Name  string
	Body  ModuleBody
	Span  source.Span
	// NameSpan указывает на идентификатор модуля (якорь для диагностик).
	NameSpan source.Span
}

// HasPathedAttrs reports whether at least one attribute carries a path value.
func (m *ModuleDecl) HasPathedAttrs() bool {
	for i := range m.Attrs {
		if m.Attrs[i].HasPath {
			return true
		}
	}
	return false
}

// ModuleBodyKind различает форвард-декларацию и тело с элементами.
type ModuleBodyKind uint8

const (
	// BodyTerminated — `mod name;`: форвард-декларация без проверок.
	BodyTerminated ModuleBodyKind = iota
	// BodyContent — `mod name { ... }`: элементы порождают ассершены.
	BodyContent
)

type ModuleBody struct {
	Kind  ModuleBodyKind
	Items []DeclItem
}

// DeclItemKind tags the DeclItem union.
type DeclItemKind uint8

const (
	ItemMethod DeclItemKind = iota
	ItemType
)

// DeclItem — элемент тела модуля: либо сигнатура метода, либо декларация типа.
// Ровно одно из полей Method/Type заполнено, согласно Kind.
type DeclItem struct {
	Kind   DeclItemKind
	Method *MethodDecl
	Type   *TypeDecl
}

// Span returns the span of whichever declaration the item holds.
func (d DeclItem) Span() source.Span {
	switch d.Kind {
	case ItemMethod:
		return d.Method.Span
	case ItemType:
		return d.Type.Span
	}
	return source.Span{}
}

// TypeDecl — `type Name;` или `type Name { methods }`.
// Терминированное тело означает «проверить только существование типа».
type TypeDecl struct {
	Name     string
	Attrs    []Attr
	Body     TypeDeclBody
	Span     source.Span
	NameSpan source.Span
}

type TypeDeclBody struct {
	Kind    ModuleBodyKind
	Methods []*MethodDecl
}
