package parser

import (
	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/token"
)

// parseModule — одна декларация модуля:
//
//	attr* vis 'mod' IDENT (';' | '{' item* '}')
func (p *Parser) parseModule() (*ast.ModuleDecl, bool) {
	startSpan := p.lx.Peek().Span

	attrs, ok := p.parseAttrs()
	if !ok {
		return nil, false
	}

	vis, ok := p.parseVisibility()
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.KwMod, diag.SynExpectModKeyword, "expected 'mod' keyword"); !ok {
		return nil, false
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return nil, false
	}

	decl := &ast.ModuleDecl{
		Attrs:    attrs,
		Vis:      vis,
		Name:     name,
		NameSpan: nameSpan,
	}

	switch {
	case p.at(token.Semicolon):
		p.advance()
		decl.Body = ast.ModuleBody{Kind: ast.BodyTerminated}
	case p.at(token.LBrace):
		p.advance()
		items, ok := p.parseModuleItems()
		if !ok {
			return nil, false
		}
		decl.Body = ast.ModuleBody{Kind: ast.BodyContent, Items: items}
	default:
		p.err(diag.SynUnexpectedToken, "expected ';' or '{' after module name")
		return nil, false
	}

	decl.Span = startSpan.Cover(p.lastSpan)
	return decl, true
}

// parseModuleItems разбирает элементы до закрывающей '}'.
func (p *Parser) parseModuleItems() ([]ast.DeclItem, bool) {
	var items []ast.DeclItem
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "unclosed module body, expected '}'")
			return items, false
		}
		item, ok := p.parseDeclItem()
		if !ok {
			return items, false
		}
		items = append(items, item)
	}
	p.advance() // '}'
	return items, true
}

// parseVisibility — пусто, 'pub', 'pub(crate)' или 'pub(super)'.
func (p *Parser) parseVisibility() (ast.Visibility, bool) {
	if !p.at(token.KwPub) {
		return ast.VisPrivate, true
	}
	p.advance()
	if !p.at(token.LParen) {
		return ast.VisPublic, true
	}
	p.advance()

	var vis ast.Visibility
	switch p.lx.Peek().Kind {
	case token.KwCrate:
		vis = ast.VisCrate
	case token.KwSuper:
		vis = ast.VisSuper
	default:
		p.err(diag.SynBadVisibility, "expected 'crate' or 'super' in visibility qualifier")
		return ast.VisPrivate, false
	}
	p.advance()
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after visibility qualifier"); !ok {
		return vis, false
	}
	return vis, true
}
