package lexer

import (
	"defmod/internal/diag"
	"defmod/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// '<' и '>' никогда не склеиваются — в грамматике деклараций нет сдвигов,
// а одиночные угловые скобки упрощают разбор вложенных дженериков.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case '#':
		return emit(token.Pound)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '*':
		return emit(token.Star)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case ':':
		return emit(token.Colon)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '?':
		return emit(token.Question)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '|':
		return emit(token.Pipe)
	case '.':
		return emit(token.Dot)
	case '_':
		return emit(token.Underscore)
	default:
		// неизвестный символ
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
