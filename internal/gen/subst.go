package gen

import "defmod/internal/ast"

// substSelf возвращает копию типового выражения, в которой каждый лист-путь
// `Self` заменён на имя объемлющего типа. Перепись чисто структурная:
// композиты пересобираются без изменений, подменяются только совпавшие
// сегменты путей — на любой глубине вложенности.
func substSelf(t ast.TypeExpr, name string) ast.TypeExpr {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case *ast.PathType:
		segs := make([]ast.PathSeg, len(v.Segments))
		for i, seg := range v.Segments {
			out := ast.PathSeg{Name: seg.Name}
			if seg.Name == "Self" {
				out.Name = name
			}
			if seg.Args != nil {
				out.Args = make([]ast.GenericArg, len(seg.Args))
				for j, arg := range seg.Args {
					out.Args[j] = ast.GenericArg{
						Lifetime: arg.Lifetime,
						Binding:  arg.Binding,
						Type:     substSelf(arg.Type, name),
					}
				}
			}
			segs[i] = out
		}
		return &ast.PathType{Leading: v.Leading, Segments: segs, Sp: v.Sp}
	case *ast.RefType:
		return &ast.RefType{Lifetime: v.Lifetime, Mut: v.Mut, Elem: substSelf(v.Elem, name), Sp: v.Sp}
	case *ast.PtrType:
		return &ast.PtrType{Mut: v.Mut, Elem: substSelf(v.Elem, name), Sp: v.Sp}
	case *ast.TupleType:
		elems := make([]ast.TypeExpr, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = substSelf(e, name)
		}
		return &ast.TupleType{Elems: elems, Sp: v.Sp}
	case *ast.SliceType:
		return &ast.SliceType{Elem: substSelf(v.Elem, name), Sp: v.Sp}
	case *ast.ArrayType:
		return &ast.ArrayType{Elem: substSelf(v.Elem, name), Len: v.Len, Sp: v.Sp}
	case *ast.BareFnType:
		params := make([]ast.TypeExpr, len(v.Params))
		for i, p := range v.Params {
			params[i] = substSelf(p, name)
		}
		return &ast.BareFnType{
			Unsafe:   v.Unsafe,
			Params:   params,
			Variadic: v.Variadic,
			Ret:      substSelf(v.Ret, name),
			Sp:       v.Sp,
		}
	case *ast.TraitObjType:
		path := substSelf(v.Path, name).(*ast.PathType)
		return &ast.TraitObjType{Impl: v.Impl, Path: path, Sp: v.Sp}
	default:
		// InferType, NeverType — листы без детей
		return t
	}
}
