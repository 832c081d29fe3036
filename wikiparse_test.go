package wikiparse

import (
	"testing"

	"github.com/kasrell/wikiparse/ast"
)

func mustParse(t *testing.T, input string) []ast.Node {
	t.Helper()
	nodes, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("parse(%q): %v", input, err)
	}
	return nodes
}

func TestItalicsUnterminatedSecondRun(t *testing.T) {
	nodes := mustParse(t, "Some ''italic text'' ''test")
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %#v", nodes)
	}
	if nodes[0] != ast.Text("Some ") {
		t.Errorf("node 0: %#v", nodes[0])
	}
	it, ok := nodes[1].(ast.Italics)
	if !ok || len(it.Content) != 1 || it.Content[0] != ast.Text("italic text") {
		t.Errorf("node 1: %#v", nodes[1])
	}
	if nodes[2] != ast.Text(" ''test") {
		t.Errorf("node 2: %#v", nodes[2])
	}
}

func TestBoldItalics(t *testing.T) {
	nodes := mustParse(t, "Some '''''bold italic text''''' test")
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %#v", nodes)
	}
	bi, ok := nodes[1].(ast.BoldItalics)
	if !ok || len(bi.Content) != 1 || bi.Content[0] != ast.Text("bold italic text") {
		t.Errorf("node 1: %#v", nodes[1])
	}
}

func TestCategoryLinks(t *testing.T) {
	nodes := mustParse(t, "[[Category:X]][[:Category:Y]][[:Категория:Z|]]")
	if len(nodes) != 3 {
		t.Fatalf("expected 3 links, got %#v", nodes)
	}
	l0 := nodes[0].(ast.Link)
	if l0.To != "Category:X" || l0.Plain {
		t.Errorf("link 0: %#v", l0)
	}
	l1 := nodes[1].(ast.Link)
	if l1.To != "Category:Y" || !l1.Plain {
		t.Errorf("link 1: %#v", l1)
	}
	l2 := nodes[2].(ast.Link)
	if l2.To != "Категория:Z" || !l2.Plain {
		t.Errorf("link 2: %#v", l2)
	}
	if len(l2.Content) != 1 || l2.Content[0] != ast.Text("Z") {
		t.Errorf("link 2 content (pipe trick): %#v", l2.Content)
	}
}

func TestTemplateNamedAndPositionalParams(t *testing.T) {
	nodes := mustParse(t, "{{t|2=b|a=1|1=a}}")
	if len(nodes) != 1 {
		t.Fatalf("expected single template node, got %#v", nodes)
	}
	tpl := nodes[0].(ast.Template)
	if tpl.Name != "t" {
		t.Fatalf("unexpected name %q", tpl.Name)
	}
	v, ok := tpl.Parameters.Get("a")
	if !ok || len(v) != 1 || v[0] != ast.Text("1") {
		t.Errorf("parameters[a]: %#v", v)
	}
	if len(tpl.PositionalParameters) != 2 {
		t.Fatalf("expected 2 positional params, got %#v", tpl.PositionalParameters)
	}
	if tpl.PositionalParameters[0][0] != ast.Text("a") || tpl.PositionalParameters[1][0] != ast.Text("b") {
		t.Errorf("unexpected positional params: %#v", tpl.PositionalParameters)
	}
}

func TestNumericEntities(t *testing.T) {
	nodes := mustParse(t, "&#1059; &#x5000;")
	if len(nodes) != 1 {
		t.Fatalf("expected a single coalesced text node, got %#v", nodes)
	}
	if nodes[0] != ast.Text("У 倀") {
		t.Fatalf("unexpected text: %q", nodes[0])
	}
}

func TestHorizontalRule(t *testing.T) {
	nodes := mustParse(t, "a\n----\nb")
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %#v", nodes)
	}
	if nodes[0] != ast.Text("a\n") {
		t.Errorf("node 0: %#v", nodes[0])
	}
	if _, ok := nodes[1].(ast.HorizontalRule); !ok {
		t.Errorf("node 1: %#v", nodes[1])
	}
	if nodes[2] != ast.Text("\nb") {
		t.Errorf("node 2: %#v", nodes[2])
	}
}

func TestHorizontalRuleRequiresStartOfLine(t *testing.T) {
	nodes := mustParse(t, "a<------------b")
	if len(nodes) != 1 {
		t.Fatalf("expected the whole input to stay plaintext, got %#v", nodes)
	}
}

func TestHeadingRequiresMatchingClose(t *testing.T) {
	nodes := mustParse(t, "=Not a heading")
	if len(nodes) != 1 {
		t.Fatalf("expected plaintext fallback, got %#v", nodes)
	}
	if nodes[0] != ast.Text("=Not a heading") {
		t.Errorf("unexpected text: %#v", nodes[0])
	}
}

func TestTableTwoRowsOfTwoCells(t *testing.T) {
	nodes := mustParse(t, "{| class=\"wikitable\"\n|-\n!a!!b\n|-\n|1||2\n|}")
	if len(nodes) != 1 {
		t.Fatalf("expected a single table node, got %#v", nodes)
	}
	tbl := nodes[0].(ast.Table)
	if len(tbl.Content) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Content))
	}
	for _, row := range tbl.Content {
		if len(row.Content) != 2 {
			t.Errorf("expected 2 cells, got %d: %#v", len(row.Content), row.Content)
		}
	}
	if !tbl.Content[0].Content[0].Header {
		t.Errorf("expected first row to be header cells")
	}
	if tbl.Content[1].Content[0].Header {
		t.Errorf("expected second row to be data cells")
	}
}
