package ast

import "defmod/internal/source"

// TypeExpr — закрытое дерево типовых выражений грамматики деклараций.
// Ровно та структура, по которой генератор делает подстановку Self:
// листья — сегменты путей, композиты пересобираются без изменений.
type TypeExpr interface {
	Span() source.Span
	typeExpr()
}

// GenericArg — аргумент в угловых скобках: lifetime, тип или биндинг
// ассоциированного типа `Name = Type`.
type GenericArg struct {
	Lifetime string // "'a"; пусто, если это тип
	Binding  string // имя в `Item = u8`; пусто для позиционного аргумента
	Type     TypeExpr
}

// PathSeg — сегмент пути с опциональными generic-аргументами.
type PathSeg struct {
	Name string
	Args []GenericArg // nil — без `<...>`
}

// PathType — путь вида `foo::Bar<'a, T>` или одиночный идентификатор.
// `Self` — это PathType с единственным сегментом "Self".
type PathType struct {
	Leading  bool // ведущий `::`
	Segments []PathSeg
	Sp       source.Span
}

// RefType — `&T`, `&'a T`, `&mut T`.
type RefType struct {
	Lifetime string
	Mut      bool
	Elem     TypeExpr
	Sp       source.Span
}

// PtrType — `*const T` / `*mut T`.
type PtrType struct {
	Mut  bool
	Elem TypeExpr
	Sp   source.Span
}

// TupleType — `(A, B)`; пустой список элементов — unit `()`.
type TupleType struct {
	Elems []TypeExpr
	Sp    source.Span
}

// SliceType — `[T]`.
type SliceType struct {
	Elem TypeExpr
	Sp   source.Span
}

// ArrayType — `[T; N]`. Длина хранится дословно: она не интерпретируется.
type ArrayType struct {
	Elem TypeExpr
	Len  string
	Sp   source.Span
}

// BareFnType — `fn(A, B) -> R`, опционально `unsafe` и variadic.
type BareFnType struct {
	Unsafe   bool
	Params   []TypeExpr
	Variadic bool
	Ret      TypeExpr // nil = unit
	Sp       source.Span
}

// TraitObjType — `dyn Trait` или `impl Trait` (одна граница).
type TraitObjType struct {
	Impl bool // true для `impl`, false для `dyn`
	Path *PathType
	Sp   source.Span
}

// InferType — `_`.
type InferType struct {
	Sp source.Span
}

// NeverType — `!`.
type NeverType struct {
	Sp source.Span
}

func (t *PathType) Span() source.Span { return t.Sp }
func (t *RefType) Span() source.Span { return t.Sp }
func (t *PtrType) Span() source.Span { return t.Sp }
func (t *TupleType) Span() source.Span { return t.Sp }
func (t *SliceType) Span() source.Span { return t.Sp }
func (t *ArrayType) Span() source.Span { return t.Sp }
func (t *BareFnType) Span() source.Span { return t.Sp }
func (t *TraitObjType) Span() source.Span { return t.Sp }
func (t *InferType) Span() source.Span { return t.Sp }
func (t *NeverType) Span() source.Span { return t.Sp }

func (*PathType) typeExpr() {}
func (*RefType) typeExpr() {}
func (*PtrType) typeExpr() {}
func (*TupleType) typeExpr() {}
func (*SliceType) typeExpr() {}
func (*ArrayType) typeExpr() {}
func (*BareFnType) typeExpr() {}
func (*TraitObjType) typeExpr() {}
func (*InferType) typeExpr() {}
func (*NeverType) typeExpr() {}

// IsSelf reports whether the type is the bare `Self` path.
func IsSelf(t TypeExpr) bool {
	p, ok := t.(*PathType)
	return ok && !p.Leading && len(p.Segments) == 1 &&
		p.Segments[0].Name == "Self" && p.Segments[0].Args == nil
}
