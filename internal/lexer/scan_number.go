package lexer

import (
	"defmod/internal/diag"
	"defmod/internal/token"
)

// Числа встречаются только в длинах массивов: [u8; 16].
// Поддержка: 0, 123, 0x..., 0b..., 0o..., '_' внутри цифр.
// Плавающих и суффиксов в этой грамматике нет.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	emit := func() token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			if !lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' }) {
				return lx.badNumber(start, "expected binary digits after '0b'")
			}
			return emit()
		case 'o', 'O':
			lx.cursor.Bump()
			if !lx.eatDigits(func(b byte) bool { return b >= '0' && b <= '7' }) {
				return lx.badNumber(start, "expected octal digits after '0o'")
			}
			return emit()
		case 'x', 'X':
			lx.cursor.Bump()
			if !lx.eatDigits(isHex) {
				return lx.badNumber(start, "expected hex digits after '0x'")
			}
			return emit()
		}
		// просто "0" с возможным хвостом десятичных цифр
		lx.eatDigits(isDec)
		return emit()
	}

	lx.eatDigits(isDec)
	return emit()
}

// eatDigits съедает цифры (по классификатору) и '_'; false если не съел ни одной цифры.
func (lx *Lexer) eatDigits(valid func(byte) bool) bool {
	any := false
	for {
		b := lx.cursor.Peek()
		if valid(b) {
			any = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	return any
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
