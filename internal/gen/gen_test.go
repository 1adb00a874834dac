package gen

// Тесты генератора ассершенов.
//
// Покрытие:
//   - Константные ассершены для обычных методов
//   - Вложенные generic-функции с дословными generics и where
//   - Scoped-блоки типов: use + переписанный receiver + подстановка Self
//   - Форвард-декларации не порождают load-функцию
//   - Индексы уникальны сквозь вложенность
//   - Метод с телом: ошибка по месту тела, соседние элементы живут

import (
	"strings"
	"testing"

	"defmod/internal/ast"
	"defmod/internal/diag"
	"defmod/internal/emit"
	"defmod/internal/lexer"
	"defmod/internal/parser"
	"defmod/internal/source"
)

// expandSource — полный конвейер: лексер → парсер → генератор.
func expandSource(t *testing.T, input string) (string, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.defmod", []byte(input))
	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	res := parser.ParseFile(fs, lx, parser.Options{MaxErrors: 100, Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.Items())
	}

	w := emit.NewWriter(emit.Options{})
	File(w, res.Modules, reporter)
	return w.String(), bag
}

func TestGen_SimpleMethod(t *testing.T) {
	out, bag := expandSource(t, "mod other { fn method(_: u64, _: u8) -> u32; }")
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := strings.Join([]string{
		"mod other;",
		"",
		"#[allow(dead_code)]",
		"fn __load_other() {",
		"    const _ASSERT_METHOD_0: fn(u64, u8) -> u32 = other::method;",
		"}",
		"",
	}, "\n")
	if out != want {
		t.Errorf("output =\n%s\nwant:\n%s", out, want)
	}
}

func TestGen_ForwardDeclNoRoutine(t *testing.T) {
	out, _ := expandSource(t, "pub mod empty;")
	if out != "pub mod empty;\n" {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "__load_") {
		t.Error("forward declaration must not produce a verification routine")
	}
}

func TestGen_EmptyContentBodyNoRoutine(t *testing.T) {
	out, _ := expandSource(t, "mod empty { }")
	if strings.Contains(out, "__load_") {
		t.Error("empty body must not produce a verification routine")
	}
}

func TestGen_PathRouting(t *testing.T) {
	out, _ := expandSource(t, `
#[cfg(windows)] = "sys/win.rs"
#[cfg(not(windows))] = "sys/nix.rs"
mod sys {
	fn init() -> u32;
}`)
	for _, line := range []string{
		"#[cfg(windows)]",
		`#[path = "sys/win.rs"]`,
		"#[cfg(not(windows))]",
		`#[path = "sys/nix.rs"]`,
		"const _ASSERT_METHOD_0: fn() -> u32 = sys::init;",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing line %q in:\n%s", line, out)
		}
	}
	if got := strings.Count(out, "mod sys;"); got != 2 {
		t.Errorf("mod statements = %d, want 2", got)
	}
	if got := strings.Count(out, "__load_sys"); got != 1 {
		t.Errorf("load routines = %d, want 1", got)
	}
}

func TestGen_TypeBlockReceiverAndSelf(t *testing.T) {
	out, bag := expandSource(t, `
mod other {
	type MyStruct {
		fn new() -> Self;
		fn reset(&mut self);
		fn consume(self) -> Vec<Self>;
		fn peek(&self) -> &Self;
	}
}`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	for _, line := range []string{
		"use self::other::MyStruct;",
		"const _ASSERT_METHOD_0: fn() -> MyStruct = MyStruct::new;",
		"const _ASSERT_METHOD_1: fn(&mut MyStruct) = MyStruct::reset;",
		"const _ASSERT_METHOD_2: fn(MyStruct) -> Vec<MyStruct> = MyStruct::consume;",
		"const _ASSERT_METHOD_3: fn(&MyStruct) -> &MyStruct = MyStruct::peek;",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing %q in:\n%s", line, out)
		}
	}
	if strings.Contains(out, "Self") {
		t.Error("Self must be fully substituted inside the type block")
	}
}

func TestGen_TerminatedTypeExistenceOnly(t *testing.T) {
	out, _ := expandSource(t, "mod m { type Handle; }")
	if !strings.Contains(out, "use self::m::Handle;") {
		t.Errorf("missing existence check in:\n%s", out)
	}
	if strings.Contains(out, "_ASSERT_METHOD_") {
		t.Error("terminated type must not produce method assertions")
	}
}

func TestGen_GenericMethod(t *testing.T) {
	out, bag := expandSource(t, `
mod other {
	fn generic<'a, T: 'a>(_: u32, other: &'a T, func: fn(T) -> u8) -> u8;
}`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := "fn _assert_method_0<'a, T: 'a>() {"
	if !strings.Contains(out, want) {
		t.Errorf("missing %q in:\n%s", want, out)
	}
	if !strings.Contains(out, "let _: fn(u32, &'a T, fn(T) -> u8) -> u8 = other::generic;") {
		t.Errorf("missing binding in:\n%s", out)
	}
	if strings.Contains(out, "const _ASSERT_METHOD_") {
		t.Error("generic method must never produce a constant binding")
	}
}

func TestGen_GenericWithWhereAndSelf(t *testing.T) {
	out, _ := expandSource(t, `
mod m {
	type T {
		fn generic<U>(self, func: fn(U) -> Self) -> Self where U: Clone;
	}
}`)
	if !strings.Contains(out, "fn _assert_method_0<U>() where U: Clone {") {
		t.Errorf("missing generic header in:\n%s", out)
	}
	if !strings.Contains(out, "let _: fn(T, fn(U) -> T) -> T = T::generic;") {
		t.Errorf("missing substituted binding in:\n%s", out)
	}
}

func TestGen_IndexUniqueAcrossNesting(t *testing.T) {
	out, _ := expandSource(t, `
mod m {
	fn a();
	type T {
		fn b();
		fn c();
	}
	fn d();
}`)
	for _, line := range []string{
		"const _ASSERT_METHOD_0: fn() = m::a;",
		"const _ASSERT_METHOD_1: fn() = T::b;",
		"const _ASSERT_METHOD_2: fn() = T::c;",
		"const _ASSERT_METHOD_3: fn() = m::d;",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing %q in:\n%s", line, out)
		}
	}
}

func TestGen_IndexResetsPerModule(t *testing.T) {
	out, _ := expandSource(t, "mod a { fn x(); }\nmod b { fn y(); }")
	if got := strings.Count(out, "_ASSERT_METHOD_0"); got != 2 {
		t.Errorf("index 0 occurrences = %d, want 2 (one per module):\n%s", got, out)
	}
}

func TestGen_MethodBodyItemScoped(t *testing.T) {
	out, bag := expandSource(t, `
mod m {
	fn bad() { }
	fn good() -> u8;
}`)
	if !bag.HasErrors() {
		t.Fatal("expected an error for the method body")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.GenMethodHasBody {
			found = true
		}
	}
	if !found {
		t.Errorf("missing GenMethodHasBody, got %v", bag.Items())
	}
	if strings.Contains(out, "m::bad") {
		t.Error("the offending item must not produce an assertion")
	}
	if !strings.Contains(out, "const _ASSERT_METHOD_0: fn() -> u8 = m::good;") {
		t.Errorf("sibling assertion missing in:\n%s", out)
	}
}

func TestGen_UnnamedParamWarning(t *testing.T) {
	out, bag := expandSource(t, "mod m { fn f(u32, bool) -> u8; }")
	if bag.HasErrors() {
		t.Fatalf("warnings must not be errors: %v", bag.Items())
	}
	warnings := 0
	for _, d := range bag.Items() {
		if d.Code == diag.GenUnnamedParam && d.Severity == diag.SevWarning {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("GenUnnamedParam warnings = %d, want 2", warnings)
	}
	if !strings.Contains(out, "const _ASSERT_METHOD_0: fn(u32, bool) -> u8 = m::f;") {
		t.Errorf("assertion must still be produced:\n%s", out)
	}
}

func TestGen_ModuleLevelReceiverDropped(t *testing.T) {
	out, bag := expandSource(t, "mod m { fn f(&self, x: u8); }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if !strings.Contains(out, "const _ASSERT_METHOD_0: fn(u8) = m::f;") {
		t.Errorf("receiver must be dropped at module level:\n%s", out)
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.GenReceiverDropped {
			found = true
		}
	}
	if !found {
		t.Error("expected GenReceiverDropped warning")
	}
}

func TestGen_UnsafeAndVariadic(t *testing.T) {
	out, _ := expandSource(t, "mod m { unsafe fn raw(fmt: &str, ...) -> i32; }")
	if !strings.Contains(out, "const _ASSERT_METHOD_0: unsafe fn(&str, ...) -> i32 = m::raw;") {
		t.Errorf("output:\n%s", out)
	}
}

func TestGen_MethodAttrsPropagated(t *testing.T) {
	out, _ := expandSource(t, `
mod m {
	#[cfg(test)]
	fn only_in_tests();
}`)
	idx := strings.Index(out, "#[cfg(test)]\n    const _ASSERT_METHOD_0:")
	if idx < 0 {
		t.Errorf("attribute must precede the assertion:\n%s", out)
	}
}

func TestSubstSelf_DeepNesting(t *testing.T) {
	// fn(&Self) -> *const [Self; 3] — плэйсхолдер на разной глубине
	self := func() ast.TypeExpr {
		return &ast.PathType{Segments: []ast.PathSeg{{Name: "Self"}}}
	}
	ty := &ast.BareFnType{
		Params: []ast.TypeExpr{&ast.RefType{Elem: self()}},
		Ret:    &ast.PtrType{Elem: &ast.ArrayType{Elem: self(), Len: "3"}},
	}
	got := ast.TypeString(substSelf(ty, "Widget"))
	want := "fn(&Widget) -> *const [Widget; 3]"
	if got != want {
		t.Errorf("subst = %q, want %q", got, want)
	}
	// исходное дерево не тронуто
	if ast.TypeString(ty) != "fn(&Self) -> *const [Self; 3]" {
		t.Error("substitution must not mutate its input")
	}
}
