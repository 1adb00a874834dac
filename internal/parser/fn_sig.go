package parser

import (
	"strings"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/token"
)

// parseMethod — голая сигнатура: `[unsafe] fn name<G>(params) -> ret where ...;`
// Тело в фигурных скобках синтаксически съедается, но запоминается в BodySpan —
// диагностику по нему поднимает генератор, не прерывая соседние элементы.
func (p *Parser) parseMethod(attrs []ast.Attr) (*ast.MethodDecl, bool) {
	startSpan := p.lx.Peek().Span

	method := &ast.MethodDecl{Attrs: attrs}

	if p.at(token.KwUnsafe) {
		p.advance()
		method.Unsafe = true
	}

	if _, ok := p.expect(token.KwFn, diag.SynUnexpectedToken, "expected 'fn'"); !ok {
		return nil, false
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	method.Name = name
	method.NameSpan = nameSpan

	if p.at(token.Lt) {
		generics, ok := p.captureGenerics()
		if !ok {
			return nil, false
		}
		method.Generics = generics
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' in method signature"); !ok {
		return nil, false
	}
	params, variadic, ok := p.parseParams()
	if !ok {
		return nil, false
	}
	method.Params = params
	method.Variadic = variadic

	if p.at(token.Arrow) {
		p.advance()
		ret, ok := p.parseType()
		if !ok {
			return nil, false
		}
		method.Ret = ret
	}

	if p.at(token.KwWhere) {
		where, ok := p.captureWhere()
		if !ok {
			return nil, false
		}
		method.Where = where
	}

	switch {
	case p.at(token.Semicolon):
		p.advance()
	case p.at(token.LBrace):
		// тело запрещено, но парсим его до конца, чтобы не сломать соседей
		bodyStart := p.advance().Span
		depth := 1
		for depth > 0 {
			if p.at(token.EOF) {
				p.err(diag.SynUnclosedBrace, "unclosed method body, expected '}'")
				return nil, false
			}
			switch p.advance().Kind {
			case token.LBrace:
				depth++
			case token.RBrace:
				depth--
			}
		}
		bodySpan := bodyStart.Cover(p.lastSpan)
		method.BodySpan = &bodySpan
	default:
		p.err(diag.SynExpectSemicolon, "expected ';' after method signature")
		return nil, false
	}

	method.Span = startSpan.Cover(p.lastSpan)
	return method, true
}

// captureGenerics захватывает `<...>` дословно, включая скобки.
// Балансировка по одиночным '<'/'>' — лексер их никогда не склеивает.
func (p *Parser) captureGenerics() (string, bool) {
	open := p.advance() // '<'
	depth := 1
	for depth > 0 {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedAngle, "unclosed generic parameter list, expected '>'")
			return "", false
		}
		switch p.advance().Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		}
	}
	span := open.Span.Cover(p.lastSpan)
	content := p.fs.Get(span.File).Content
	return string(content[span.Start:span.End]), true
}

// captureWhere захватывает where-клаузу дословно до ';' или '{' (не съедая их).
func (p *Parser) captureWhere() (string, bool) {
	start := p.advance() // 'where'
	for !p.atOr(token.Semicolon, token.LBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynExpectSemicolon, "expected ';' after where clause")
			return "", false
		}
		p.advance()
	}
	span := start.Span.Cover(p.lastSpan)
	content := p.fs.Get(span.File).Content
	return strings.TrimSpace(string(content[span.Start:span.End])), true
}
