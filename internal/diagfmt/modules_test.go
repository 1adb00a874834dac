package diagfmt

// Тесты дампа деклараций: дерево и JSON.

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"defmod/internal/ast"
	"defmod/internal/source"
)

func sampleModule() *ast.ModuleDecl {
	u32 := &ast.PathType{Segments: []ast.PathSeg{{Name: "u32"}}}
	u64 := &ast.PathType{Segments: []ast.PathSeg{{Name: "u64"}}}
	return &ast.ModuleDecl{
		Name: "other",
		Vis:  ast.VisPublic,
		Attrs: []ast.Attr{
			{Text: `#[cfg(test)]`},
			{Text: `#[test_attr] = "folder/mod.rs"`, Path: "folder/mod.rs", HasPath: true},
		},
		Body: ast.ModuleBody{
			Kind: ast.BodyContent,
			Items: []ast.DeclItem{
				{Kind: ast.ItemMethod, Method: &ast.MethodDecl{
					Name:   "method",
					Params: []ast.Param{{Kind: ast.ParamTyped, Name: "_", Type: u64}},
					Ret:    u32,
				}},
				{Kind: ast.ItemType, Type: &ast.TypeDecl{
					Name: "Ctx",
					Body: ast.TypeDeclBody{
						Kind: ast.BodyContent,
						Methods: []*ast.MethodDecl{{
							Name:   "get",
							Params: []ast.Param{{Kind: ast.ParamRecvRef}},
							Ret:    u32,
						}},
					},
				}},
			},
		},
		Span: source.Span{Start: 0, End: 10},
	}
}

func TestFormatModulesPretty(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("input.defmod", []byte("pub mod other { }\n"))

	var buf bytes.Buffer
	if err := FormatModulesPretty(&buf, []*ast.ModuleDecl{sampleModule()}, fs); err != nil {
		t.Fatalf("FormatModulesPretty: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"pub mod other at 1:1",
		"attr #[cfg(test)]",
		"├─ fn method(_: u64) -> u32",
		"└─ type Ctx",
		"└─ fn get(&self) -> u32",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatModulesPretty_Forward(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("input.defmod", []byte("mod fwd;\n"))

	m := &ast.ModuleDecl{
		Name: "fwd",
		Body: ast.ModuleBody{Kind: ast.BodyTerminated},
	}
	var buf bytes.Buffer
	if err := FormatModulesPretty(&buf, []*ast.ModuleDecl{m}, fs); err != nil {
		t.Fatalf("FormatModulesPretty: %v", err)
	}
	if !strings.Contains(buf.String(), "mod fwd at 1:1 (forward)") {
		t.Errorf("forward marker missing:\n%s", buf.String())
	}
}

func TestFormatModulesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatModulesJSON(&buf, []*ast.ModuleDecl{sampleModule()}); err != nil {
		t.Fatalf("FormatModulesJSON: %v", err)
	}

	var decoded []ModuleOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 module, got %d", len(decoded))
	}
	m := decoded[0]
	if m.Name != "other" || m.Vis != "pub" || m.Forward {
		t.Errorf("module header mismatch: %+v", m)
	}
	if len(m.Attrs) != 2 || m.Attrs[1].Path != "folder/mod.rs" {
		t.Errorf("attrs mismatch: %+v", m.Attrs)
	}
	if len(m.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(m.Items))
	}
	if m.Items[0].Kind != "method" || m.Items[0].Ret != "u32" {
		t.Errorf("method item mismatch: %+v", m.Items[0])
	}
	if m.Items[1].Kind != "type" || len(m.Items[1].Methods) != 1 {
		t.Errorf("type item mismatch: %+v", m.Items[1])
	}
	if got := m.Items[1].Methods[0].Params; len(got) != 1 || got[0] != "&self" {
		t.Errorf("receiver param mismatch: %v", got)
	}
}
