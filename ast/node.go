package ast

// Node is implemented by every element that can appear in a parsed
// document. The top-level parse result, and every Content/Items field
// below, is a []Node.
type Node interface {
	Kind() Kind
}

// Text is the plaintext leaf. Adjacent Text values are always coalesced
// by Append, so a well-formed []Node never contains two Text values in a
// row.
type Text string

func (Text) Kind() Kind { return TextKind }

// Append pushes n onto content, concatenating into a trailing Text
// instead of appending a new element when both n and the last element
// are Text. This is the "append" contract referenced throughout the
// grammar productions.
func Append(content []Node, n Node) []Node {
	if len(content) == 0 {
		return append(content, n)
	}
	if s, ok := n.(Text); ok {
		if last, ok := content[len(content)-1].(Text); ok {
			content[len(content)-1] = last + s
			return content
		}
	}
	return append(content, n)
}

// AppendString is a convenience wrapper for the common case of
// coalescing a single rune or literal substring into content.
func AppendString(content []Node, s string) []Node {
	if s == "" {
		return content
	}
	return Append(content, Text(s))
}

// Trim strips leading whitespace from a leading Text element (dropping it
// entirely if it becomes empty) and trailing whitespace from a trailing
// Text element, symmetrically. Non-Text elements at either end are left
// alone. Applied after parameter and cell parsing, per the data model's
// trim contract.
func Trim(content []Node) []Node {
	if len(content) == 0 {
		return content
	}
	if first, ok := content[0].(Text); ok {
		trimmed := trimLeadingSpace(string(first))
		if trimmed == "" {
			content = content[1:]
		} else {
			content = append([]Node{Text(trimmed)}, content[1:]...)
		}
	}
	if len(content) == 0 {
		return content
	}
	if last, ok := content[len(content)-1].(Text); ok {
		trimmed := trimTrailingSpace(string(last))
		if trimmed == "" {
			content = content[:len(content)-1]
		} else {
			content = append(content[:len(content)-1:len(content)-1], Text(trimmed))
		}
	}
	return content
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return s[i:]
}

func trimTrailingSpace(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t' || s[i-1] == '\n' || s[i-1] == '\r') {
		i--
	}
	return s[:i]
}
