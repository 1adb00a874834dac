package parser

// Тесты разбора деклараций модулей.
//
// Покрытие:
//   - Форвард-декларации: mod foo; с видимостью и атрибутами
//   - Тела модулей: сигнатуры методов и декларации типов
//   - Параметры: receiver-формы, именованные, легаси «только тип», variadic
//   - Типовые выражения: пути с дженериками, ссылки, кортежи, fn-указатели
//   - Дословный захват generics и where
//   - Обработка ошибок и восстановление на верхнем уровне

import (
	"strings"
	"testing"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/lexer"
	"defmod/internal/source"
)

// makeTestParser — хелпер для создания парсера с тестовой строкой
func makeTestParser(input string) (*Parser, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.defmod", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	p := &Parser{
		lx:       lx,
		fs:       fs,
		opts:     Options{MaxErrors: 100, Reporter: reporter},
		lastSpan: lx.EmptySpan(),
	}
	return p, bag
}

// parseOne — разбирает ровно одну декларацию модуля, падает при ошибках
func parseOne(t *testing.T, input string) *ast.ModuleDecl {
	t.Helper()
	p, bag := makeTestParser(input)
	decl, ok := p.parseModule()
	if !ok {
		for _, d := range bag.Items() {
			t.Logf("diag: %s %s", d.Code, d.Message)
		}
		t.Fatalf("parseModule failed for %q", input)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected errors for %q: %v", input, bag.Items())
	}
	return decl
}

// firstCode — код первой диагностики в баге
func firstCode(t *testing.T, bag *diag.Bag) diag.Code {
	t.Helper()
	items := bag.Items()
	if len(items) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	return items[0].Code
}

func TestParseModule_Forward(t *testing.T) {
	tests := []struct {
		name  string
		input string
		vis   ast.Visibility
	}{
		{"private", "mod foo;", ast.VisPrivate},
		{"public", "pub mod foo;", ast.VisPublic},
		{"crate", "pub(crate) mod foo;", ast.VisCrate},
		{"super", "pub(super) mod foo;", ast.VisSuper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := parseOne(t, tt.input)
			if decl.Name != "foo" {
				t.Errorf("name = %q, want foo", decl.Name)
			}
			if decl.Vis != tt.vis {
				t.Errorf("vis = %v, want %v", decl.Vis, tt.vis)
			}
			if decl.Body.Kind != ast.BodyTerminated {
				t.Errorf("body kind = %v, want BodyTerminated", decl.Body.Kind)
			}
		})
	}
}

func TestParseModule_Attrs(t *testing.T) {
	decl := parseOne(t, `#[cfg(test)] #[cfg(feature = "x")] = "custom/path.rs" mod foo;`)
	if len(decl.Attrs) != 2 {
		t.Fatalf("attrs = %d, want 2", len(decl.Attrs))
	}
	if decl.Attrs[0].Text != "#[cfg(test)]" {
		t.Errorf("attr[0] = %q", decl.Attrs[0].Text)
	}
	if decl.Attrs[0].HasPath {
		t.Error("attr[0] must not carry a path")
	}
	if decl.Attrs[1].Text != `#[cfg(feature = "x")]` {
		t.Errorf("attr[1] = %q", decl.Attrs[1].Text)
	}
	if !decl.Attrs[1].HasPath || decl.Attrs[1].Path != "custom/path.rs" {
		t.Errorf("attr[1] path = %q (has=%v), want custom/path.rs", decl.Attrs[1].Path, decl.Attrs[1].HasPath)
	}
	if !decl.HasPathedAttrs() {
		t.Error("HasPathedAttrs() = false, want true")
	}
}

func TestParseModule_NestedAttrBrackets(t *testing.T) {
	decl := parseOne(t, `#[cfg(any(test, feature = "a"))] mod foo;`)
	if len(decl.Attrs) != 1 {
		t.Fatalf("attrs = %d, want 1", len(decl.Attrs))
	}
	if got := decl.Attrs[0].Text; got != `#[cfg(any(test, feature = "a"))]` {
		t.Errorf("attr text = %q", got)
	}
}

func TestParseModule_Items(t *testing.T) {
	input := `mod other {
		fn method(_: u64, _: u8) -> u32;
		type Widget;
		pub mod ignored_vis;
	}`
	// видимость у элементов не поддерживается — последняя строка должна падать
	p, bag := makeTestParser(input)
	_, ok := p.parseModule()
	if ok {
		t.Fatal("expected failure on nested 'pub mod'")
	}
	if !bag.HasErrors() {
		t.Fatal("expected errors")
	}
}

func TestParseModule_MethodsAndTypes(t *testing.T) {
	input := `pub mod ctx {
		fn read(&self, buf: &mut [u8]) -> usize;
		unsafe fn raw(self) -> *const u8;
		type Handle;
		type Conn {
			fn close(&mut self);
		}
	}`
	decl := parseOne(t, input)
	if decl.Body.Kind != ast.BodyContent {
		t.Fatal("expected content body")
	}
	if len(decl.Body.Items) != 4 {
		t.Fatalf("items = %d, want 4", len(decl.Body.Items))
	}

	read := decl.Body.Items[0].Method
	if read == nil || read.Name != "read" {
		t.Fatalf("item[0] = %+v, want method read", decl.Body.Items[0])
	}
	if len(read.Params) != 2 {
		t.Fatalf("read params = %d, want 2", len(read.Params))
	}
	if read.Params[0].Kind != ast.ParamRecvRef {
		t.Errorf("read param[0] kind = %v, want ParamRecvRef", read.Params[0].Kind)
	}
	if got := ast.TypeString(read.Params[1].Type); got != "&mut [u8]" {
		t.Errorf("read param[1] type = %q, want &mut [u8]", got)
	}
	if got := ast.TypeString(read.Ret); got != "usize" {
		t.Errorf("read ret = %q, want usize", got)
	}

	raw := decl.Body.Items[1].Method
	if !raw.Unsafe {
		t.Error("raw must be unsafe")
	}
	if raw.Params[0].Kind != ast.ParamRecvValue {
		t.Errorf("raw param[0] kind = %v, want ParamRecvValue", raw.Params[0].Kind)
	}
	if got := ast.TypeString(raw.Ret); got != "*const u8" {
		t.Errorf("raw ret = %q, want *const u8", got)
	}

	handle := decl.Body.Items[2].Type
	if handle == nil || handle.Name != "Handle" || handle.Body.Kind != ast.BodyTerminated {
		t.Fatalf("item[2] = %+v, want terminated type Handle", decl.Body.Items[2])
	}

	conn := decl.Body.Items[3].Type
	if conn == nil || len(conn.Body.Methods) != 1 {
		t.Fatalf("item[3] = %+v, want type Conn with one method", decl.Body.Items[3])
	}
	if conn.Body.Methods[0].Params[0].Kind != ast.ParamRecvRefMut {
		t.Errorf("close receiver kind = %v, want ParamRecvRefMut", conn.Body.Methods[0].Params[0].Kind)
	}
}

func TestParseMethod_GenericsAndWhereVerbatim(t *testing.T) {
	input := `mod m {
		fn generic<'a, T: Iterator<Item = u8>>(x: &'a T) -> Option<T> where T: Clone;
	}`
	decl := parseOne(t, input)
	m := decl.Body.Items[0].Method
	if m.Generics != "<'a, T: Iterator<Item = u8>>" {
		t.Errorf("generics = %q", m.Generics)
	}
	if m.Where != "where T: Clone" {
		t.Errorf("where = %q", m.Where)
	}
	if !m.IsGeneric() {
		t.Error("IsGeneric() = false")
	}
	if got := ast.TypeString(m.Ret); got != "Option<T>" {
		t.Errorf("ret = %q, want Option<T>", got)
	}
}

func TestParseMethod_ParamForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []ast.ParamKind
		types []string // TypeString по параметрам; "" для receiver
	}{
		{
			"named and wildcard",
			"fn f(a: u32, _: bool);",
			[]ast.ParamKind{ast.ParamTyped, ast.ParamTyped},
			[]string{"u32", "bool"},
		},
		{
			"legacy bare types",
			"fn f(u32, Vec<u8>);",
			[]ast.ParamKind{ast.ParamBareType, ast.ParamBareType},
			[]string{"u32", "Vec<u8>"},
		},
		{
			"legacy reference",
			"fn f(&str);",
			[]ast.ParamKind{ast.ParamBareType},
			[]string{"&str"},
		},
		{
			"receiver value",
			"fn f(self, x: u8);",
			[]ast.ParamKind{ast.ParamRecvValue, ast.ParamTyped},
			[]string{"", "u8"},
		},
		{
			"receiver mut value",
			"fn f(mut self);",
			[]ast.ParamKind{ast.ParamRecvValue},
			[]string{""},
		},
		{
			"receiver ref with lifetime",
			"fn f(&'a self);",
			[]ast.ParamKind{ast.ParamRecvRef},
			[]string{""},
		},
		{
			"receiver ref mut",
			"fn f(&mut self);",
			[]ast.ParamKind{ast.ParamRecvRefMut},
			[]string{""},
		},
		{
			"mut named param",
			"fn f(mut buf: Vec<u8>);",
			[]ast.ParamKind{ast.ParamTyped},
			[]string{"Vec<u8>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := parseOne(t, "mod m { "+tt.input+" }")
			m := decl.Body.Items[0].Method
			if len(m.Params) != len(tt.kinds) {
				t.Fatalf("params = %d, want %d", len(m.Params), len(tt.kinds))
			}
			for i, k := range tt.kinds {
				if m.Params[i].Kind != k {
					t.Errorf("param[%d] kind = %v, want %v", i, m.Params[i].Kind, k)
				}
				if tt.types[i] == "" {
					continue
				}
				if got := ast.TypeString(m.Params[i].Type); got != tt.types[i] {
					t.Errorf("param[%d] type = %q, want %q", i, got, tt.types[i])
				}
			}
		})
	}
}

func TestParseMethod_Variadic(t *testing.T) {
	decl := parseOne(t, "mod m { fn printf(fmt: &str, ...); }")
	m := decl.Body.Items[0].Method
	if !m.Variadic {
		t.Error("variadic = false")
	}
	if len(m.Params) != 1 {
		t.Errorf("params = %d, want 1", len(m.Params))
	}
}

func TestParseMethod_BodyRecorded(t *testing.T) {
	decl := parseOne(t, "mod m { fn bad() { let x = { 1 }; x } fn good(); }")
	bad := decl.Body.Items[0].Method
	if bad.BodySpan == nil {
		t.Fatal("BodySpan = nil, want recorded body")
	}
	good := decl.Body.Items[1].Method
	if good.BodySpan != nil {
		t.Error("good must not have a body")
	}
}

func TestParseType_Forms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"u32", "u32"},
		{"::std::vec::Vec<u8>", "::std::vec::Vec<u8>"},
		{"crate::ctx::Handle", "crate::ctx::Handle"},
		{"Self", "Self"},
		{"&'a mut T", "&'a mut T"},
		{"*mut u8", "*mut u8"},
		{"()", "()"},
		{"(u8,)", "(u8,)"},
		{"(u8, u16)", "(u8, u16)"},
		{"((u8))", "u8"},
		{"[u8]", "[u8]"},
		{"[u8; 16]", "[u8; 16]"},
		{"[u8; LEN]", "[u8; LEN]"},
		{"fn(u8) -> u16", "fn(u8) -> u16"},
		{"unsafe fn(u8, ...)", "unsafe fn(u8, ...)"},
		{"dyn Iterator<Item = u8>", "dyn Iterator<Item = u8>"},
		{"impl Clone", "impl Clone"},
		{"_", "_"},
		{"!", "!"},
		{"Map<'a, K, V>", "Map<'a, K, V>"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, bag := makeTestParser(tt.input)
			ty, ok := p.parseType()
			if !ok {
				for _, d := range bag.Items() {
					t.Logf("diag: %s %s", d.Code, d.Message)
				}
				t.Fatalf("parseType failed for %q", tt.input)
			}
			if got := ast.TypeString(ty); got != tt.want {
				t.Errorf("TypeString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing mod", "pub foo;", diag.SynExpectModKeyword},
		{"missing name", "mod ;", diag.SynExpectIdentifier},
		{"missing terminator", "mod foo", diag.SynUnexpectedToken},
		{"bad visibility", "pub(self) mod foo;", diag.SynBadVisibility},
		{"unclosed body", "mod foo { fn f();", diag.SynUnclosedBrace},
		{"bad item", "mod foo { const X: u8; }", diag.SynExpectItem},
		{"receiver not first", "mod foo { fn f(x: u8, self); }", diag.SynBadReceiver},
		{"variadic not last", "mod foo { fn f(..., x: u8); }", diag.SynVariadicMustBeLast},
		{"missing semicolon", "mod foo { fn f() }", diag.SynExpectSemicolon},
		{"attr without bracket", "# mod foo;", diag.SynAttrBadForm},
		{"attr path not string", "#[path] = 42 mod foo;", diag.SynAttrExpectPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, bag := makeTestParser(tt.input)
			_, ok := p.parseModule()
			if ok && !bag.HasErrors() {
				t.Fatalf("expected failure for %q", tt.input)
			}
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("missing code %s, got %v", tt.code, bag.Items())
			}
		})
	}
}

func TestParseFile_Recovery(t *testing.T) {
	input := strings.Join([]string{
		"mod good_one;",
		"mod 123;", // мусор: парсер должен восстановиться
		"pub mod good_two;",
	}, "\n")

	p, bag := makeTestParser(input)
	modules := p.parseModules()

	if !bag.HasErrors() {
		t.Fatal("expected errors from the bad declaration")
	}
	if len(modules) != 2 {
		t.Fatalf("modules = %d, want 2 recovered", len(modules))
	}
	if modules[0].Name != "good_one" || modules[1].Name != "good_two" {
		t.Errorf("recovered names = %s, %s", modules[0].Name, modules[1].Name)
	}
}

func TestParseFile_EntryPoint(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("multi.defmod", []byte("mod a;\npub mod b { fn f(); }\n"))
	bag := diag.NewBag(100)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	res := ParseFile(fs, lx, Options{MaxErrors: 100, Reporter: diag.BagReporter{Bag: bag}})
	if res.Bag != bag {
		t.Error("result bag must be the reporter's bag")
	}
	if len(res.Modules) != 2 {
		t.Fatalf("modules = %d, want 2", len(res.Modules))
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected errors: %v", res.Bag.Items())
	}
}
