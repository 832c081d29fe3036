package grammar

import (
	"strings"

	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

var templateDescriptor = engine.Descriptor{
	Type:  ast.TemplateKind,
	Start: "{{",
	Func:  parseTemplate,
}

// parseTemplate parses {{name|params}}. The name region still parses
// Comment nodes (a comment inside the name is legal and simply vanishes,
// rather than leaking its delimiters into the name as plaintext); only
// textContent below keeps the Text pieces.
func parseTemplate(s *engine.State) (ast.Node, bool) {
	name, ok := s.Next(engine.NextOptions{
		EndBefore:   []string{"|", "}}"},
		BacktrackOn: atEndOfLine,
	})
	if !ok {
		return nil, false
	}
	nameText := strings.ToLower(strings.TrimSpace(textContent(name)))
	if nameText == "" {
		return nil, false
	}

	params := parseParams(s, "}}", nil)

	if !s.Cursor.Eat("}}") {
		return nil, false
	}

	return ast.Template{
		Name:                 nameText,
		Parameters:           params.named,
		PositionalParameters: params.positional,
	}, true
}
