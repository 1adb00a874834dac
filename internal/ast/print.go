package ast

import "strings"

// TypeString печатает типовое выражение обратно в исходный синтаксис.
// Выход канонический: один пробел после запятых, без лишних скобок.
func TypeString(t TypeExpr) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t TypeExpr) {
	switch v := t.(type) {
	case *PathType:
		if v.Leading {
			sb.WriteString("::")
		}
		for i, seg := range v.Segments {
			if i > 0 {
				sb.WriteString("::")
			}
			sb.WriteString(seg.Name)
			if seg.Args != nil {
				sb.WriteByte('<')
				for j, arg := range seg.Args {
					if j > 0 {
						sb.WriteString(", ")
					}
					if arg.Lifetime != "" {
						sb.WriteString(arg.Lifetime)
					} else {
						if arg.Binding != "" {
							sb.WriteString(arg.Binding)
							sb.WriteString(" = ")
						}
						writeType(sb, arg.Type)
					}
				}
				sb.WriteByte('>')
			}
		}
	case *RefType:
		sb.WriteByte('&')
		if v.Lifetime != "" {
			sb.WriteString(v.Lifetime)
			sb.WriteByte(' ')
		}
		if v.Mut {
			sb.WriteString("mut ")
		}
		writeType(sb, v.Elem)
	case *PtrType:
		if v.Mut {
			sb.WriteString("*mut ")
		} else {
			sb.WriteString("*const ")
		}
		writeType(sb, v.Elem)
	case *TupleType:
		sb.WriteByte('(')
		for i, e := range v.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeType(sb, e)
		}
		if len(v.Elems) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')
	case *SliceType:
		sb.WriteByte('[')
		writeType(sb, v.Elem)
		sb.WriteByte(']')
	case *ArrayType:
		sb.WriteByte('[')
		writeType(sb, v.Elem)
		sb.WriteString("; ")
		sb.WriteString(v.Len)
		sb.WriteByte(']')
	case *BareFnType:
		if v.Unsafe {
			sb.WriteString("unsafe ")
		}
		sb.WriteString("fn(")
		for i, p := range v.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeType(sb, p)
		}
		if v.Variadic {
			if len(v.Params) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("...")
		}
		sb.WriteByte(')')
		if v.Ret != nil {
			sb.WriteString(" -> ")
			writeType(sb, v.Ret)
		}
	case *TraitObjType:
		if v.Impl {
			sb.WriteString("impl ")
		} else {
			sb.WriteString("dyn ")
		}
		writeType(sb, v.Path)
	case *InferType:
		sb.WriteByte('_')
	case *NeverType:
		sb.WriteByte('!')
	}
}
