package ast

import "defmod/internal/source"

// MethodDecl — голая сигнатура метода: `fn name<G>(params) -> ret where ...;`
// Тело не допускается; если оно было в исходнике, парсер сохраняет его span
// в BodySpan, а генератор поднимает фатальную (для элемента) диагностику.
type MethodDecl struct {
	Attrs    []Attr
	Unsafe   bool
	Name     string
	NameSpan source.Span
	// Generics хранит список параметров-дженериков дословно, включая угловые
	// скобки ("<'a, T: 'a>"); он только копируется в сгенерированный код.
	Generics string
	// Where хранит where-клаузу дословно ("where T: Clone"); "" если её нет.
	Where    string
	Params   []Param
	Variadic bool
	// Ret — возвращаемый тип; nil означает unit ("-> ()" не пишется).
	Ret      TypeExpr
	BodySpan *source.Span // непустой, если метод принёс запрещённое тело
	Span     source.Span
}

// IsGeneric reports whether the method declares any generic parameters.
func (m *MethodDecl) IsGeneric() bool {
	return m.Generics != ""
}

// ParamKind различает формы параметров, включая три формы receiver.
type ParamKind uint8

const (
	// ParamTyped — обычный параметр `name: Type` или `_: Type`.
	ParamTyped ParamKind = iota
	// ParamBareType — легаси-форма `Type` без имени; принимается с warning.
	ParamBareType
	// ParamRecvValue — `self` или `mut self`.
	ParamRecvValue
	// ParamRecvRef — `&self` (возможно с lifetime).
	ParamRecvRef
	// ParamRecvRefMut — `&mut self` (возможно с lifetime).
	ParamRecvRefMut
)

// Param — один параметр сигнатуры. Type == nil у receiver-форм.
type Param struct {
	Kind ParamKind
	Name string // "" для receiver и легаси-форм; "_" хранится как имя
	Type TypeExpr
	Span source.Span
}

// IsReceiver reports whether the parameter is a self receiver in any form.
func (p Param) IsReceiver() bool {
	switch p.Kind {
	case ParamRecvValue, ParamRecvRef, ParamRecvRefMut:
		return true
	default:
		return false
	}
}
