package token

// Kind represents the category of a declaration token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a lifetime token such as 'a.
	Lifetime
	// IntLit represents an integer literal (array lengths).
	IntLit
	// StringLit represents a string literal (attribute path values).
	StringLit

	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwType represents the 'type' keyword.
	KwType // type
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwCrate represents the 'crate' keyword.
	KwCrate // crate
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwSelfValue represents the 'self' receiver keyword.
	KwSelfValue // self
	// KwSelfType represents the 'Self' placeholder type keyword.
	KwSelfType // Self
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwUnsafe represents the 'unsafe' keyword.
	KwUnsafe // unsafe
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwDyn represents the 'dyn' keyword.
	KwDyn // dyn
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwStatic represents the 'static' keyword.
	KwStatic // static

	// Pound represents the '#' token.
	Pound // #
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Lt represents the '<' token. The lexer never fuses '<<' so generic
	// nesting stays a matter of counting single tokens.
	Lt // <
	// Gt represents the '>' token.
	Gt // >
	// Amp represents the '&' token.
	Amp // &
	// Star represents the '*' token.
	Star // *
	// Comma represents the ',' token.
	Comma // ,
	// Semicolon represents the ';' token.
	Semicolon // ;
	// Colon represents the ':' token.
	Colon // :
	// ColonColon represents the '::' token.
	ColonColon // ::
	// Arrow represents the '->' token.
	Arrow // ->
	// Assign represents the '=' token.
	Assign // =
	// Bang represents the '!' token.
	Bang // !
	// Question represents the '?' token.
	Question // ?
	// Plus represents the '+' token.
	Plus // +
	// Minus represents the '-' token.
	Minus // -
	// Pipe represents the '|' token.
	Pipe // |
	// Dot represents the '.' token.
	Dot // .
	// DotDotDot represents the '...' variadic token.
	DotDotDot // ...
	// Underscore represents the '_' token.
	Underscore // _
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	Lifetime:    "Lifetime",
	IntLit:      "IntLit",
	StringLit:   "StringLit",
	KwMod:       "KwMod",
	KwFn:        "KwFn",
	KwType:      "KwType",
	KwPub:       "KwPub",
	KwCrate:     "KwCrate",
	KwSuper:     "KwSuper",
	KwSelfValue: "KwSelfValue",
	KwSelfType:  "KwSelfType",
	KwMut:       "KwMut",
	KwConst:     "KwConst",
	KwUnsafe:    "KwUnsafe",
	KwExtern:    "KwExtern",
	KwDyn:       "KwDyn",
	KwImpl:      "KwImpl",
	KwWhere:     "KwWhere",
	KwFor:       "KwFor",
	KwAs:        "KwAs",
	KwIn:        "KwIn",
	KwStatic:    "KwStatic",
	Pound:       "Pound",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Lt:          "Lt",
	Gt:          "Gt",
	Amp:         "Amp",
	Star:        "Star",
	Comma:       "Comma",
	Semicolon:   "Semicolon",
	Colon:       "Colon",
	ColonColon:  "ColonColon",
	Arrow:       "Arrow",
	Assign:      "Assign",
	Bang:        "Bang",
	Question:    "Question",
	Plus:        "Plus",
	Minus:       "Minus",
	Pipe:        "Pipe",
	Dot:         "Dot",
	DotDotDot:   "DotDotDot",
	Underscore:  "Underscore",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
