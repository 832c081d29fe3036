package grammar

import (
	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

var headingDescriptor = engine.Descriptor{
	Type:         ast.HeadingKind,
	Start:        "=",
	KeepStart:    true,
	PreCondition: startOfLine,
	Func:         parseHeading,
}

// parseHeading counts leading '=' as level, parses content up to a
// matching run of that many '=', and requires it to actually close —
// otherwise the whole thing is a failed production and falls back to
// plaintext.
func parseHeading(s *engine.State) (ast.Node, bool) {
	entry := s.Cursor.Save()
	level := s.Cursor.EatCount('=')
	if level > 6 {
		s.Cursor.Restore(entry)
		return nil, false
	}
	closer := repeatRune('=', level)

	content, ok := s.Next(engine.NextOptions{
		EndBefore:   []string{closer},
		BacktrackOn: atEndOfLine,
	})
	if !ok {
		s.Cursor.Restore(entry)
		return nil, false
	}
	if !s.Cursor.Eat(closer) {
		s.Cursor.Restore(entry)
		return nil, false
	}
	s.Cursor.EatWhitespace(false)
	s.Cursor.Eat("\n")

	return ast.Heading{Level: level, Content: ast.Trim(content)}, true
}

func repeatRune(r rune, n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = r
	}
	return string(b)
}
