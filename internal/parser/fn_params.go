package parser

import (
	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/source"
	"defmod/internal/token"
)

// parseParams разбирает список параметров до ')' (сам ')' съедается).
// Распознаются три формы receiver (self / &self / &mut self), именованные
// параметры `name: Type`, подстановочный `_: Type` и легаси-форма «только тип».
func (p *Parser) parseParams() ([]ast.Param, bool, bool) {
	var params []ast.Param
	variadic := false

	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedParen, "unclosed parameter list, expected ')'")
			return params, variadic, false
		}

		if variadic {
			p.err(diag.SynVariadicMustBeLast, "'...' must be the last parameter")
			return params, variadic, false
		}

		if p.at(token.DotDotDot) {
			p.advance()
			variadic = true
		} else {
			param, ok := p.parseParam()
			if !ok {
				return params, variadic, false
			}
			if param.IsReceiver() && len(params) > 0 {
				p.report(diag.SynBadReceiver, diag.SevError, param.Span,
					"receiver must be the first parameter")
				return params, variadic, false
			}
			params = append(params, param)
		}

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.RParen) {
			p.err(diag.SynUnexpectedToken, "expected ',' or ')' in parameter list")
			return params, variadic, false
		}
	}
	p.advance() // ')'
	return params, variadic, true
}

func (p *Parser) parseParam() (ast.Param, bool) {
	startSpan := p.lx.Peek().Span

	switch p.lx.Peek().Kind {
	case token.KwSelfValue:
		// `self`
		p.advance()
		return ast.Param{Kind: ast.ParamRecvValue, Span: startSpan.Cover(p.lastSpan)}, true

	case token.KwMut:
		// `mut self` или `mut name: Type`
		p.advance()
		if p.at(token.KwSelfValue) {
			p.advance()
			return ast.Param{Kind: ast.ParamRecvValue, Span: startSpan.Cover(p.lastSpan)}, true
		}
		return p.parseNamedParam(startSpan)

	case token.Amp:
		// `&self`, `&'a self`, `&mut self` — либо легаси-тип `&T`
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
		if p.at(token.KwSelfValue) {
			p.advance()
			kind := ast.ParamRecvRef
			if isMut {
				kind = ast.ParamRecvRefMut
			}
			return ast.Param{Kind: kind, Span: startSpan.Cover(p.lastSpan)}, true
		}
		elem, ok := p.parseType()
		if !ok {
			return ast.Param{}, false
		}
		sp := startSpan.Cover(p.lastSpan)
		return ast.Param{
			Kind: ast.ParamBareType,
			Type: &ast.RefType{Lifetime: lifetime, Mut: isMut, Elem: elem, Sp: sp},
			Span: sp,
		}, true

	case token.Ident:
		nameTok := p.advance()
		if p.at(token.Colon) {
			p.advance()
			ty, ok := p.parseType()
			if !ok {
				return ast.Param{}, false
			}
			return ast.Param{
				Kind: ast.ParamTyped,
				Name: nameTok.Text,
				Type: ty,
				Span: startSpan.Cover(p.lastSpan),
			}, true
		}
		// легаси: «только тип», который начался с идентификатора
		ty, ok := p.parsePathTail(false, nameTok.Text, nameTok.Span)
		if !ok {
			return ast.Param{}, false
		}
		return ast.Param{Kind: ast.ParamBareType, Type: ty, Span: startSpan.Cover(p.lastSpan)}, true

	case token.Underscore:
		usTok := p.advance()
		if p.at(token.Colon) {
			p.advance()
			ty, ok := p.parseType()
			if !ok {
				return ast.Param{}, false
			}
			return ast.Param{
				Kind: ast.ParamTyped,
				Name: "_",
				Type: ty,
				Span: startSpan.Cover(p.lastSpan),
			}, true
		}
		return ast.Param{
			Kind: ast.ParamBareType,
			Type: &ast.InferType{Sp: usTok.Span},
			Span: usTok.Span,
		}, true

	default:
		// прочие стартеры типов: ( [ * fn unsafe dyn impl :: Self !
		ty, ok := p.parseType()
		if !ok {
			return ast.Param{}, false
		}
		return ast.Param{Kind: ast.ParamBareType, Type: ty, Span: startSpan.Cover(p.lastSpan)}, true
	}
}

// parseNamedParam доразбирает `name: Type` после уже съеденного 'mut'.
func (p *Parser) parseNamedParam(startSpan source.Span) (ast.Param, bool) {
	name, _, ok := p.parseIdent()
	if !ok {
		return ast.Param{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
		return ast.Param{}, false
	}
	ty, ok := p.parseType()
	if !ok {
		return ast.Param{}, false
	}
	return ast.Param{
		Kind: ast.ParamTyped,
		Name: name,
		Type: ty,
		Span: startSpan.Cover(p.lastSpan),
	}, true
}
