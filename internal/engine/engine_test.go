package engine

import (
	"testing"

	"github.com/kasrell/wikiparse/ast"
)

// boldDescriptor is a minimal stand-in for the real grammar's bold
// production, enough to exercise Next/node end-to-end without importing
// internal/grammar (which itself depends on this package).
func boldDescriptor() Descriptor {
	return Descriptor{
		Type:  ast.BoldKind,
		Start: "'''",
		Next: &NextOptions{
			End: []string{"'''"},
		},
		Builder: func(content []ast.Node) ast.Node {
			return ast.Bold{Content: content}
		},
	}
}

func linkDescriptor() Descriptor {
	return Descriptor{
		Type:  ast.LinkKind,
		Start: "[[",
		Next: &NextOptions{
			End: []string{"]]"},
		},
		Builder: func(content []ast.Node) ast.Node {
			return ast.Link{To: textOf(content), Content: content}
		},
	}
}

func textOf(content []ast.Node) string {
	if len(content) == 1 {
		if t, ok := content[0].(ast.Text); ok {
			return string(t)
		}
	}
	return ""
}

func TestNextPlainTextOnly(t *testing.T) {
	s := NewState("hello world", nil, 1000, false)
	nodes, ok := s.Next(NextOptions{EndAtEOS: true})
	if !ok {
		t.Fatal("expected match")
	}
	if len(nodes) != 1 {
		t.Fatalf("expected single coalesced text node, got %d", len(nodes))
	}
	if string(nodes[0].(ast.Text)) != "hello world" {
		t.Fatalf("unexpected text: %v", nodes[0])
	}
}

func TestNextDispatchesBold(t *testing.T) {
	table := []Descriptor{boldDescriptor()}
	s := NewState("a '''b''' c", table, 1000, false)
	nodes, ok := s.Next(NextOptions{EndAtEOS: true})
	if !ok {
		t.Fatal("expected match")
	}
	if len(nodes) != 3 {
		t.Fatalf("expected [text, bold, text], got %d nodes: %#v", len(nodes), nodes)
	}
	b, ok := nodes[1].(ast.Bold)
	if !ok {
		t.Fatalf("expected Bold, got %T", nodes[1])
	}
	if string(b.Content[0].(ast.Text)) != "b" {
		t.Fatalf("unexpected bold content: %#v", b.Content)
	}
}

func TestNextBacktracksOnUnterminatedBold(t *testing.T) {
	table := []Descriptor{boldDescriptor()}
	s := NewState("a '''b", table, 1000, false)
	nodes, ok := s.Next(NextOptions{EndAtEOS: true})
	if !ok {
		t.Fatal("expected overall match via plaintext fallback")
	}
	if len(nodes) != 1 {
		t.Fatalf("expected single coalesced text node (bold never closed), got %#v", nodes)
	}
	if string(nodes[0].(ast.Text)) != "a '''b" {
		t.Fatalf("unexpected text: %q", nodes[0])
	}
}

func TestNextNoEndConditionReturnsEmpty(t *testing.T) {
	s := NewState("anything", nil, 1000, false)
	nodes, ok := s.Next(NextOptions{})
	if !ok || nodes != nil {
		t.Fatalf("expected (nil, true) when no end condition set, got (%v, %v)", nodes, ok)
	}
}

func TestBacktrackingLimitExceededAborts(t *testing.T) {
	table := []Descriptor{linkDescriptor()}
	s := NewState("[[a[[b[[c[[d", table, 2, false)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic once the backtracking budget was exhausted")
		}
		a, ok := r.(abort)
		if !ok {
			t.Fatalf("expected abort panic, got %#v", r)
		}
		if _, ok := a.err.(BacktrackingLimitExceeded); !ok {
			t.Fatalf("expected BacktrackingLimitExceeded, got %#v", a.err)
		}
	}()

	s.Next(NextOptions{EndAtEOS: true})
}

func TestKindAllowedFiltersDispatch(t *testing.T) {
	table := []Descriptor{boldDescriptor()}
	s := NewState("'''x'''", table, 1000, false)
	empty := []ast.Kind{}
	nodes, ok := s.Next(NextOptions{EndAtEOS: true, Allow: &empty})
	if !ok {
		t.Fatal("expected match")
	}
	if len(nodes) != 1 {
		t.Fatalf("expected bold production to be filtered out, got %#v", nodes)
	}
	if _, isText := nodes[0].(ast.Text); !isText {
		t.Fatalf("expected plain text fallback, got %T", nodes[0])
	}
}
