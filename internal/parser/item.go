package parser

import (
	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/token"
)

// parseDeclItem — элемент тела модуля: сигнатура метода или декларация типа.
// Атрибуты разбираются здесь и уходят в соответствующую декларацию.
func (p *Parser) parseDeclItem() (ast.DeclItem, bool) {
	attrs, ok := p.parseAttrs()
	if !ok {
		return ast.DeclItem{}, false
	}

	switch p.lx.Peek().Kind {
	case token.KwFn, token.KwUnsafe:
		method, ok := p.parseMethod(attrs)
		if !ok {
			return ast.DeclItem{}, false
		}
		return ast.DeclItem{Kind: ast.ItemMethod, Method: method}, true
	case token.KwType:
		typeDecl, ok := p.parseTypeDecl(attrs)
		if !ok {
			return ast.DeclItem{}, false
		}
		return ast.DeclItem{Kind: ast.ItemType, Type: typeDecl}, true
	default:
		p.err(diag.SynExpectItem, "expected 'fn' or 'type' declaration, got \""+p.lx.Peek().Text+"\"")
		return ast.DeclItem{}, false
	}
}

// parseTypeDecl — `type Name;` или `type Name { method* }`.
func (p *Parser) parseTypeDecl(attrs []ast.Attr) (*ast.TypeDecl, bool) {
	startSpan := p.lx.Peek().Span
	p.advance() // 'type'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return nil, false
	}

	decl := &ast.TypeDecl{
		Name:     name,
		Attrs:    attrs,
		NameSpan: nameSpan,
	}

	switch {
	case p.at(token.Semicolon):
		p.advance()
		decl.Body = ast.TypeDeclBody{Kind: ast.BodyTerminated}
	case p.at(token.LBrace):
		p.advance()
		var methods []*ast.MethodDecl
		for !p.at(token.RBrace) {
			if p.at(token.EOF) {
				p.err(diag.SynUnclosedBrace, "unclosed type body, expected '}'")
				return nil, false
			}
			methodAttrs, ok := p.parseAttrs()
			if !ok {
				return nil, false
			}
			if !p.atOr(token.KwFn, token.KwUnsafe) {
				p.err(diag.SynExpectItem, "expected method signature in type body, got \""+p.lx.Peek().Text+"\"")
				return nil, false
			}
			method, ok := p.parseMethod(methodAttrs)
			if !ok {
				return nil, false
			}
			methods = append(methods, method)
		}
		p.advance() // '}'
		decl.Body = ast.TypeDeclBody{Kind: ast.BodyContent, Methods: methods}
	default:
		p.err(diag.SynUnexpectedToken, "expected ';' or '{' after type name")
		return nil, false
	}

	decl.Span = startSpan.Cover(p.lastSpan)
	return decl, true
}
