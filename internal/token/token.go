package token

import (
	"defmod/internal/source"
)

// Token represents a single declaration token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an integer or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a declaration keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwMod, KwFn, KwType, KwPub, KwCrate, KwSuper, KwSelfValue, KwSelfType,
		KwMut, KwConst, KwUnsafe, KwExtern, KwDyn, KwImpl, KwWhere, KwFor,
		KwAs, KwIn, KwStatic:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Pound, LBracket, RBracket, LParen, RParen, LBrace, RBrace, Lt, Gt,
		Amp, Star, Comma, Semicolon, Colon, ColonColon, Arrow, Assign, Bang,
		Question, Plus, Minus, Pipe, Dot, DotDotDot, Underscore:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
