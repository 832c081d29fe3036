package grammar

import (
	"strconv"
	"strings"

	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

// htmlEntityGroup is the "HTML entities group" of §4.4, dispatched
// through engine.Descriptor.Group from entityGroupDescriptor below.
var htmlEntityGroup = []engine.Descriptor{
	{Type: ast.TextKind, Start: "nbsp;", ReplaceWith: " "},
	{Type: ast.TextKind, Start: "lt;", ReplaceWith: "<"},
	{Type: ast.TextKind, Start: "gt;", ReplaceWith: ">"},
	{Type: ast.TextKind, Start: "mdash;", ReplaceWith: "—"},
	{Type: ast.TextKind, Start: "ndash;", ReplaceWith: "–"},
	{Type: ast.TextKind, Start: "minus;", ReplaceWith: "−"},
	{Type: ast.TextKind, Start: "thinsp;", ReplaceWith: " "},
	{Type: ast.TextKind, Start: "#", KeepStart: true, Func: parseNumericEntity},
}

var entityGroupDescriptor = engine.Descriptor{
	Start: "&",
	Group: htmlEntityGroup,
}

// parseNumericEntity implements the "#" branch: &#NNN; decimal or
// &#xHHHH; hex, per §8 scenario "&#1059; &#x5000;" → "У 倀".
func parseNumericEntity(s *engine.State) (ast.Node, bool) {
	if !s.Cursor.Eat("#") {
		return nil, false
	}
	hex := s.Cursor.Eat("x") || s.Cursor.Eat("X")

	var digits strings.Builder
	for {
		r, ok := s.Cursor.PeekRune()
		if !ok {
			break
		}
		if hex && isHexDigit(r) {
			digits.WriteRune(r)
			s.Cursor.AdvanceOne()
			continue
		}
		if !hex && r >= '0' && r <= '9' {
			digits.WriteRune(r)
			s.Cursor.AdvanceOne()
			continue
		}
		break
	}
	if digits.Len() == 0 {
		return nil, false
	}
	if !s.Cursor.Eat(";") {
		return nil, false
	}

	base := 10
	if hex {
		base = 16
	}
	n, err := strconv.ParseInt(digits.String(), base, 32)
	if err != nil {
		return nil, false
	}
	return ast.Text(string(rune(n))), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
