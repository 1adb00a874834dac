package token

var keywords = map[string]Kind{
	"mod":    KwMod,
	"fn":     KwFn,
	"type":   KwType,
	"pub":    KwPub,
	"crate":  KwCrate,
	"super":  KwSuper,
	"self":   KwSelfValue,
	"Self":   KwSelfType,
	"mut":    KwMut,
	"const":  KwConst,
	"unsafe": KwUnsafe,
	"extern": KwExtern,
	"dyn":    KwDyn,
	"impl":   KwImpl,
	"where":  KwWhere,
	"for":    KwFor,
	"as":     KwAs,
	"in":     KwIn,
	"static": KwStatic,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Сравнение регистрозависимое: 'Self' и 'self' — разные токены.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
