package parser

import (
	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/source"
	"defmod/internal/token"
)

// parseType разбирает одно типовое выражение. Грамматика закрыта:
// пути, ссылки, сырые указатели, кортежи, срезы/массивы, bare fn,
// dyn/impl Trait, `_` и `!`. Всё прочее — SynExpectType.
func (p *Parser) parseType() (ast.TypeExpr, bool) {
	start := p.lx.Peek().Span

	switch p.lx.Peek().Kind {
	case token.Amp:
		p.advance()
		lifetime := ""
		if p.at(token.Lifetime) {
			lifetime = p.advance().Text
		}
		isMut := false
		if p.at(token.KwMut) {
			isMut = true
			p.advance()
		}
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.RefType{Lifetime: lifetime, Mut: isMut, Elem: elem, Sp: start.Cover(p.lastSpan)}, true

	case token.Star:
		p.advance()
		isMut := false
		switch p.lx.Peek().Kind {
		case token.KwConst:
			p.advance()
		case token.KwMut:
			isMut = true
			p.advance()
		default:
			p.err(diag.SynExpectType, "expected 'const' or 'mut' after '*' in raw pointer type")
			return nil, false
		}
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.PtrType{Mut: isMut, Elem: elem, Sp: start.Cover(p.lastSpan)}, true

	case token.LParen:
		return p.parseTupleType(start)

	case token.LBracket:
		return p.parseBracketType(start)

	case token.KwFn:
		return p.parseBareFn(start, false)

	case token.KwUnsafe:
		p.advance()
		if !p.at(token.KwFn) {
			p.err(diag.SynExpectType, "expected 'fn' after 'unsafe' in function pointer type")
			return nil, false
		}
		return p.parseBareFn(start, true)

	case token.Bang:
		p.advance()
		return &ast.NeverType{Sp: start}, true

	case token.Underscore:
		p.advance()
		return &ast.InferType{Sp: start}, true

	case token.KwDyn:
		p.advance()
		path, ok := p.parsePathType()
		if !ok {
			return nil, false
		}
		return &ast.TraitObjType{Impl: false, Path: path, Sp: start.Cover(p.lastSpan)}, true

	case token.KwImpl:
		p.advance()
		path, ok := p.parsePathType()
		if !ok {
			return nil, false
		}
		return &ast.TraitObjType{Impl: true, Path: path, Sp: start.Cover(p.lastSpan)}, true

	case token.Ident, token.KwSelfType, token.KwSelfValue, token.KwCrate, token.KwSuper, token.ColonColon:
		return p.parsePathType()

	default:
		p.err(diag.SynExpectType, "expected type, got \""+p.lx.Peek().Text+"\"")
		return nil, false
	}
}

// parseTupleType — `()`, `(T)`, `(A, B, ...)`. Одиночный элемент без запятой
// разворачивается в сам элемент: скобки группирующие, не кортежные.
func (p *Parser) parseTupleType(start source.Span) (ast.TypeExpr, bool) {
	p.advance() // '('
	var elems []ast.TypeExpr
	sawComma := false
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedParen, "unclosed '(' in type")
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		elems = append(elems, ty)
		if p.at(token.Comma) {
			sawComma = true
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' in type"); !ok {
		return nil, false
	}
	if len(elems) == 1 && !sawComma {
		return elems[0], true
	}
	return &ast.TupleType{Elems: elems, Sp: start.Cover(p.lastSpan)}, true
}

// parseBracketType — `[T]` или `[T; N]`. Длина массива хранится дословно.
func (p *Parser) parseBracketType(start source.Span) (ast.TypeExpr, bool) {
	p.advance() // '['
	elem, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if p.at(token.Semicolon) {
		p.advance()
		if !p.atOr(token.IntLit, token.Ident, token.Underscore) {
			p.err(diag.SynExpectType, "expected array length after ';'")
			return nil, false
		}
		lenTok := p.advance()
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array length"); !ok {
			return nil, false
		}
		return &ast.ArrayType{Elem: elem, Len: lenTok.Text, Sp: start.Cover(p.lastSpan)}, true
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in slice type"); !ok {
		return nil, false
	}
	return &ast.SliceType{Elem: elem, Sp: start.Cover(p.lastSpan)}, true
}

// parseBareFn — `fn(A, B) -> R` после уже разобранного опционального 'unsafe'.
func (p *Parser) parseBareFn(start source.Span, isUnsafe bool) (ast.TypeExpr, bool) {
	p.advance() // 'fn'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' in function pointer type"); !ok {
		return nil, false
	}
	var params []ast.TypeExpr
	variadic := false
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedParen, "unclosed '(' in function pointer type")
			return nil, false
		}
		if variadic {
			p.err(diag.SynVariadicMustBeLast, "'...' must be the last parameter")
			return nil, false
		}
		if p.at(token.DotDotDot) {
			p.advance()
			variadic = true
		} else {
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			params = append(params, ty)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' in function pointer type"); !ok {
		return nil, false
	}
	var ret ast.TypeExpr
	if p.at(token.Arrow) {
		p.advance()
		var ok bool
		ret, ok = p.parseType()
		if !ok {
			return nil, false
		}
	}
	return &ast.BareFnType{
		Unsafe:   isUnsafe,
		Params:   params,
		Variadic: variadic,
		Ret:      ret,
		Sp:       start.Cover(p.lastSpan),
	}, true
}

// parsePathType — путь с нуля: опциональный ведущий `::`, затем сегменты.
func (p *Parser) parsePathType() (*ast.PathType, bool) {
	start := p.lx.Peek().Span
	leading := false
	if p.at(token.ColonColon) {
		p.advance()
		leading = true
	}
	name, nameSpan, ok := p.parseSegName()
	if !ok {
		return nil, false
	}
	if leading {
		nameSpan = start.Cover(nameSpan)
	}
	return p.parsePathTail(leading, name, nameSpan)
}

// parsePathTail доразбирает путь, первый сегмент которого уже съеден.
// Через него же идёт легаси-параметр «только тип», начавшийся с Ident.
func (p *Parser) parsePathTail(leading bool, firstName string, firstSpan source.Span) (*ast.PathType, bool) {
	segs := make([]ast.PathSeg, 0, 2)

	args, ok := p.parseGenericArgsOpt()
	if !ok {
		return nil, false
	}
	segs = append(segs, ast.PathSeg{Name: firstName, Args: args})

	for p.at(token.ColonColon) {
		p.advance()
		name, _, ok := p.parseSegName()
		if !ok {
			return nil, false
		}
		args, ok := p.parseGenericArgsOpt()
		if !ok {
			return nil, false
		}
		segs = append(segs, ast.PathSeg{Name: name, Args: args})
	}

	return &ast.PathType{Leading: leading, Segments: segs, Sp: firstSpan.Cover(p.lastSpan)}, true
}

// bareSegmentName возвращает имя, если тип — одиночный идентификатор без аргументов.
func bareSegmentName(ty ast.TypeExpr) (string, bool) {
	pt, ok := ty.(*ast.PathType)
	if !ok || pt.Leading || len(pt.Segments) != 1 || pt.Segments[0].Args != nil {
		return "", false
	}
	return pt.Segments[0].Name, true
}

// parseSegName — сегмент пути: идентификатор либо ключевое слово-псевдосегмент.
func (p *Parser) parseSegName() (string, source.Span, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident, token.KwSelfType, token.KwSelfValue, token.KwCrate, token.KwSuper:
		tok := p.advance()
		return tok.Text, tok.Span, true
	default:
		p.err(diag.SynExpectType, "expected path segment, got \""+p.lx.Peek().Text+"\"")
		return "", p.getDiagnosticSpan(), false
	}
}

// parseGenericArgsOpt — `<...>` после сегмента, если есть. nil без скобок,
// пустой не-nil слайс для вырожденного `<>`.
func (p *Parser) parseGenericArgsOpt() ([]ast.GenericArg, bool) {
	if !p.at(token.Lt) {
		return nil, true
	}
	p.advance() // '<'
	args := []ast.GenericArg{}
	for !p.at(token.Gt) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedAngle, "unclosed '<' in generic arguments")
			return nil, false
		}
		if p.at(token.Lifetime) {
			args = append(args, ast.GenericArg{Lifetime: p.advance().Text})
		} else {
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			arg := ast.GenericArg{Type: ty}
			if p.at(token.Assign) {
				// биндинг ассоциированного типа: слева обязан быть голый идентификатор
				name, ok := bareSegmentName(ty)
				if !ok {
					p.err(diag.SynUnexpectedToken, "expected identifier before '=' in generic arguments")
					return nil, false
				}
				p.advance()
				bound, ok := p.parseType()
				if !ok {
					return nil, false
				}
				arg.Binding = name
				arg.Type = bound
			}
			args = append(args, arg)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.Gt, diag.SynUnclosedAngle, "expected '>' in generic arguments"); !ok {
		return nil, false
	}
	return args, true
}
