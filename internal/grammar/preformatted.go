package grammar

import (
	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

var preformattedDescriptor = engine.Descriptor{
	Type:         ast.PreformattedKind,
	Start:        " ",
	KeepStart:    true,
	PreCondition: startOfLine,
	Func:         parsePreformatted,
}

var preformattedLineAllow = []ast.Kind{
	ast.LineBreakKind, ast.TemplateKind, ast.CommentKind, ast.LinkKind, ast.BoldKind, ast.ItalicsKind,
}

// parsePreformatted accumulates consecutive space-prefixed lines, each
// parsed with a narrow allow-list, falling back to raw text for whatever
// that narrow parse can't consume.
func parsePreformatted(s *engine.State) (ast.Node, bool) {
	var content []ast.Node
	for s.Cursor.IsStartOfLine() && s.Cursor.Eat(" ") {
		line, ok := s.Next(engine.NextOptions{
			End:      []string{"\n"},
			EndAtEOS: true,
			Allow:    &preformattedLineAllow,
		})
		if !ok {
			line, _ = s.Next(engine.NextOptions{
				End:      []string{"\n"},
				EndAtEOS: true,
				Allow:    &[]ast.Kind{},
			})
		}
		content = append(content, line...)
		content = ast.AppendString(content, "\n")
	}
	if len(content) == 0 {
		return nil, false
	}
	return ast.Preformatted{Content: content}, true
}
