package ast

import "testing"

func TestAppendCoalescesAdjacentText(t *testing.T) {
	var content []Node
	content = Append(content, Text("Some "))
	content = Append(content, Text("italic text"))
	content = Append(content, Italics{Content: []Node{Text("x")}})
	content = Append(content, Text(" "))
	content = Append(content, Text("test"))

	if len(content) != 3 {
		t.Fatalf("expected 3 elements after coalescing, got %d: %#v", len(content), content)
	}
	if content[0] != Text("Some italic text") {
		t.Errorf("expected coalesced leading text, got %#v", content[0])
	}
	if content[2] != Text(" test") {
		t.Errorf("expected coalesced trailing text, got %#v", content[2])
	}
}

func TestAppendStringIgnoresEmpty(t *testing.T) {
	var content []Node
	content = AppendString(content, "")
	if len(content) != 0 {
		t.Fatalf("expected empty content, got %#v", content)
	}
}

func TestTrimStripsLeadingAndTrailingWhitespace(t *testing.T) {
	content := []Node{Text("  hello "), Bold{Content: []Node{Text("x")}}, Text(" world  ")}
	trimmed := Trim(content)

	if len(trimmed) != 3 {
		t.Fatalf("expected 3 elements, got %d: %#v", len(trimmed), trimmed)
	}
	if trimmed[0] != Text("hello ") {
		t.Errorf("expected leading text trimmed to %q, got %#v", "hello ", trimmed[0])
	}
	if trimmed[2] != Text(" world") {
		t.Errorf("expected trailing text trimmed to %q, got %#v", " world", trimmed[2])
	}
}

func TestTrimPrunesEmptyStringsEntirely(t *testing.T) {
	content := []Node{Text("   "), Bold{Content: []Node{Text("x")}}}
	trimmed := Trim(content)
	if len(trimmed) != 1 {
		t.Fatalf("expected the all-whitespace leading Text to be pruned, got %#v", trimmed)
	}
	if _, ok := trimmed[0].(Bold); !ok {
		t.Errorf("expected remaining element to be Bold, got %#v", trimmed[0])
	}
}
