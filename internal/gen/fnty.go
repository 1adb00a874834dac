package gen

import (
	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/source"
)

// bareFnType строит тип голого указателя на функцию из сигнатуры метода.
//
// На уровне модуля receiver-параметры смысла не имеют: они выбрасываются
// с предупреждением. Внутри тела типа receiver переписывается в явный
// первый параметр (&Type / &mut Type / Type), чтобы тип указателя честно
// кодировал контракт вызова. selfName != "" включает режим тела типа и
// подстановку Self в остальных параметрах и возвращаемом типе.
func (g *Generator) bareFnType(m *ast.MethodDecl, selfName string) *ast.BareFnType {
	params := make([]ast.TypeExpr, 0, len(m.Params))
	for _, p := range m.Params {
		if p.IsReceiver() {
			if selfName == "" {
				g.report(diag.GenReceiverDropped, diag.SevWarning, p.Span,
					"receiver on a module-level function is dropped from the checked signature")
				continue
			}
			params = append(params, receiverType(p.Kind, selfName, p.Span))
			continue
		}
		if p.Kind == ast.ParamBareType {
			g.report(diag.GenUnnamedParam, diag.SevWarning, p.Span,
				"unnamed parameter is deprecated, write `_: Type` instead")
		}
		ty := p.Type
		if selfName != "" {
			ty = substSelf(ty, selfName)
		}
		params = append(params, ty)
	}

	ret := m.Ret
	if selfName != "" {
		ret = substSelf(ret, selfName)
	}

	return &ast.BareFnType{
		Unsafe:   m.Unsafe,
		Params:   params,
		Variadic: m.Variadic,
		Ret:      ret,
		Sp:       m.Span,
	}
}

func receiverType(kind ast.ParamKind, selfName string, sp source.Span) ast.TypeExpr {
	self := &ast.PathType{Segments: []ast.PathSeg{{Name: selfName}}, Sp: sp}
	switch kind {
	case ast.ParamRecvRef:
		return &ast.RefType{Elem: self, Sp: sp}
	case ast.ParamRecvRefMut:
		return &ast.RefType{Mut: true, Elem: self, Sp: sp}
	default:
		return self
	}
}
