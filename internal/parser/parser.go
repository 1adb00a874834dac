package parser

import (
	"slices"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/lexer"
	"defmod/internal/source"
	"defmod/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Modules []*ast.ModuleDecl
	Bag     *diag.Bag
}

// Parser — состояние парсера на один файл деклараций
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла деклараций.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	modules := p.parseModules()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Modules: modules,
		Bag:     bag,
	}
}

// parseModules — основной цикл верхнего уровня: пока не EOF — parseModule.
func (p *Parser) parseModules() []*ast.ModuleDecl {
	var modules []*ast.ModuleDecl
	for !p.at(token.EOF) {
		decl, ok := p.parseModule()
		if !ok {
			p.resyncTop()
			continue
		}
		modules = append(modules, decl)
	}
	return modules
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до ';' ИЛИ до стартового токена следующей декларации ИЛИ EOF.
func (p *Parser) resyncTop() {
	stopTokens := []token.Kind{token.Semicolon, token.Pound, token.KwMod, token.KwPub}

	// первый токен съедаем всегда, иначе зациклимся на самом стартере
	if !p.at(token.EOF) {
		p.advance()
	}
	for !p.at(token.EOF) && !slices.Contains(stopTokens, p.lx.Peek().Kind) {
		p.advance()
	}

	// Если нашли semicolon, съедаем его
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}
