package emit

import "testing"

func TestWriterIndentation(t *testing.T) {
	w := NewWriter(Options{})
	w.Line("fn __load_test() {")
	w.Indent()
	w.Line("const A: fn(u32) -> u8 = test::method;")
	w.Dedent()
	w.Line("}")

	want := "fn __load_test() {\n    const A: fn(u32) -> u8 = test::method;\n}\n"
	if got := w.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriterTabs(t *testing.T) {
	w := NewWriter(Options{UseTabs: true})
	w.Indent()
	w.Writef("%s;", "mod foo")
	if got := w.String(); got != "\tmod foo;" {
		t.Errorf("output = %q", got)
	}
}

func TestWriterBlankLine(t *testing.T) {
	w := NewWriter(Options{})
	w.Line("a")
	w.BlankLine()
	w.BlankLine() // повторный вызов не добавляет вторую пустую строку
	w.Line("b")
	if got := w.String(); got != "a\n\nb\n" {
		t.Errorf("output = %q", got)
	}
}
