package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"defmod/internal/ast"
	"defmod/internal/source"
)

// ModuleOutput — JSON-представление одной декларации модуля.
type ModuleOutput struct {
	Name    string       `json:"name"`
	Vis     string       `json:"vis,omitempty"`
	Attrs   []AttrOutput `json:"attrs,omitempty"`
	Forward bool         `json:"forward"`
	Items   []ItemOutput `json:"items,omitempty"`
	Span    source.Span  `json:"span"`
}

type AttrOutput struct {
	Text string `json:"text"`
	Path string `json:"path,omitempty"`
}

type ItemOutput struct {
	Kind     string       `json:"kind"` // "method" | "type"
	Name     string       `json:"name"`
	Generics string       `json:"generics,omitempty"`
	Where    string       `json:"where,omitempty"`
	Unsafe   bool         `json:"unsafe,omitempty"`
	Params   []string     `json:"params,omitempty"`
	Variadic bool         `json:"variadic,omitempty"`
	Ret      string       `json:"ret,omitempty"`
	Forward  bool         `json:"forward,omitempty"`
	Methods  []ItemOutput `json:"methods,omitempty"`
	Attrs    []AttrOutput `json:"attrs,omitempty"`
	Span     source.Span  `json:"span"`
}

// FormatModulesPretty печатает декларации в виде дерева.
func FormatModulesPretty(w io.Writer, modules []*ast.ModuleDecl, fs *source.FileSet) error {
	for _, m := range modules {
		start, _ := fs.Resolve(m.Span)
		header := "mod"
		if v := m.Vis.String(); v != "" {
			header = v + " mod"
		}
		fmt.Fprintf(w, "%s %s at %d:%d", header, m.Name, start.Line, start.Col)
		if m.Body.Kind == ast.BodyTerminated {
			fmt.Fprint(w, " (forward)")
		}
		fmt.Fprintln(w)

		for _, a := range m.Attrs {
			fmt.Fprintf(w, "│  attr %s\n", a.Text)
		}

		for i, item := range m.Body.Items {
			last := i == len(m.Body.Items)-1
			branch, prefix := "├─ ", "│  "
			if last {
				branch, prefix = "└─ ", "   "
			}
			fmt.Fprint(w, branch)
			printItemPretty(w, item, prefix)
		}
	}
	return nil
}

func printItemPretty(w io.Writer, item ast.DeclItem, prefix string) {
	switch item.Kind {
	case ast.ItemMethod:
		fmt.Fprintf(w, "%s\n", methodSummary(item.Method))
	case ast.ItemType:
		t := item.Type
		if t.Body.Kind == ast.BodyTerminated {
			fmt.Fprintf(w, "type %s (forward)\n", t.Name)
			return
		}
		fmt.Fprintf(w, "type %s\n", t.Name)
		for i, m := range t.Body.Methods {
			branch := prefix + "├─ "
			if i == len(t.Body.Methods)-1 {
				branch = prefix + "└─ "
			}
			fmt.Fprintf(w, "%s%s\n", branch, methodSummary(m))
		}
	}
}

func methodSummary(m *ast.MethodDecl) string {
	s := "fn " + m.Name
	if m.Unsafe {
		s = "unsafe " + s
	}
	s += m.Generics + "("
	for i, p := range m.Params {
		if i > 0 {
			s += ", "
		}
		s += paramSummary(p)
	}
	if m.Variadic {
		if len(m.Params) > 0 {
			s += ", "
		}
		s += "..."
	}
	s += ")"
	if m.Ret != nil {
		s += " -> " + ast.TypeString(m.Ret)
	}
	if m.Where != "" {
		s += " " + m.Where
	}
	return s
}

func paramSummary(p ast.Param) string {
	switch p.Kind {
	case ast.ParamRecvValue:
		return "self"
	case ast.ParamRecvRef:
		return "&self"
	case ast.ParamRecvRefMut:
		return "&mut self"
	case ast.ParamBareType:
		return ast.TypeString(p.Type)
	default:
		return p.Name + ": " + ast.TypeString(p.Type)
	}
}

// BuildModulesJSON собирает JSON-представление всех деклараций файла.
func BuildModulesJSON(modules []*ast.ModuleDecl) []ModuleOutput {
	out := make([]ModuleOutput, 0, len(modules))
	for _, m := range modules {
		mo := ModuleOutput{
			Name:    m.Name,
			Vis:     m.Vis.String(),
			Attrs:   buildAttrs(m.Attrs),
			Forward: m.Body.Kind == ast.BodyTerminated,
			Span:    m.Span,
		}
		for _, item := range m.Body.Items {
			mo.Items = append(mo.Items, buildItemJSON(item))
		}
		out = append(out, mo)
	}
	return out
}

func buildAttrs(attrs []ast.Attr) []AttrOutput {
	var out []AttrOutput
	for _, a := range attrs {
		ao := AttrOutput{Text: a.Text}
		if a.HasPath {
			ao.Path = a.Path
		}
		out = append(out, ao)
	}
	return out
}

func buildItemJSON(item ast.DeclItem) ItemOutput {
	switch item.Kind {
	case ast.ItemMethod:
		return buildMethodJSON(item.Method)
	case ast.ItemType:
		t := item.Type
		node := ItemOutput{
			Kind:    "type",
			Name:    t.Name,
			Attrs:   buildAttrs(t.Attrs),
			Forward: t.Body.Kind == ast.BodyTerminated,
			Span:    t.Span,
		}
		for _, m := range t.Body.Methods {
			node.Methods = append(node.Methods, buildMethodJSON(m))
		}
		return node
	}
	return ItemOutput{}
}

func buildMethodJSON(m *ast.MethodDecl) ItemOutput {
	node := ItemOutput{
		Kind:     "method",
		Name:     m.Name,
		Generics: m.Generics,
		Where:    m.Where,
		Unsafe:   m.Unsafe,
		Variadic: m.Variadic,
		Attrs:    buildAttrs(m.Attrs),
		Span:     m.Span,
	}
	for _, p := range m.Params {
		node.Params = append(node.Params, paramSummary(p))
	}
	if m.Ret != nil {
		node.Ret = ast.TypeString(m.Ret)
	}
	return node
}

// FormatModulesJSON выводит декларации файла в JSON.
func FormatModulesJSON(w io.Writer, modules []*ast.ModuleDecl) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildModulesJSON(modules))
}
