package parser

import (
	"strconv"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/token"
)

// parseAttrs разбирает ноль или больше атрибутов: `#[...]` с опциональным
// путевым значением `= "path"`. Содержимое скобок не интерпретируется —
// захватываем исходный текст дословно (балансируя вложенные скобки).
func (p *Parser) parseAttrs() ([]ast.Attr, bool) {
	var attrs []ast.Attr
	for p.at(token.Pound) {
		pound := p.advance()
		if _, ok := p.expect(token.LBracket, diag.SynAttrBadForm, "expected '[' after '#'"); !ok {
			return attrs, false
		}
		depth := 1
		for depth > 0 {
			if p.at(token.EOF) {
				p.err(diag.SynUnclosedBracket, "unclosed attribute, expected ']'")
				return attrs, false
			}
			tok := p.advance()
			switch tok.Kind {
			case token.LBracket:
				depth++
			case token.RBracket:
				depth--
			}
		}

		span := pound.Span.Cover(p.lastSpan)
		content := p.fs.Get(span.File).Content
		attr := ast.Attr{
			Text: string(content[span.Start:span.End]),
			Span: span,
		}

		if p.at(token.Assign) {
			p.advance()
			lit, ok := p.expect(token.StringLit, diag.SynAttrExpectPath,
				"expected string literal after '=' in attribute")
			if !ok {
				return attrs, false
			}
			attr.HasPath = true
			attr.Path = unquote(lit.Text)
			attr.PathSpan = lit.Span
		}
		attrs = append(attrs, attr)
	}
	return attrs, true
}

// unquote снимает кавычки со строкового литерала. Литерал приходит из
// лексера уже с обеими кавычками; при битых escape возвращаем содержимое как есть.
func unquote(lit string) string {
	if s, err := strconv.Unquote(lit); err == nil {
		return s
	}
	if len(lit) >= 2 && lit[0] == '"' && lit[len(lit)-1] == '"' {
		return lit[1 : len(lit)-1]
	}
	return lit
}
