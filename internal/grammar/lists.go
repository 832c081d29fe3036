package grammar

import (
	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

var unorderedListDescriptor = engine.Descriptor{
	Type:         ast.UnorderedListKind,
	Start:        "*",
	KeepStart:    true,
	PreCondition: startOfLine,
	Func:         listFunc('*', func(items []ast.ListItem) ast.Node { return ast.UnorderedList{Items: items} }),
}

var orderedListDescriptor = engine.Descriptor{
	Type:         ast.OrderedListKind,
	Start:        "#",
	KeepStart:    true,
	PreCondition: startOfLine,
	Func:         listFunc('#', func(items []ast.ListItem) ast.Node { return ast.OrderedList{Items: items} }),
}

var indentDescriptor = engine.Descriptor{
	Type:         ast.IndentKind,
	Start:        ":",
	KeepStart:    true,
	PreCondition: startOfLine,
	Func:         listFunc(':', func(items []ast.ListItem) ast.Node { return ast.Indent{Items: items} }),
}

func startOfLine(s *engine.State) bool { return s.Cursor.IsStartOfLine() }

// listFunc builds the shared list/indent production: greedily count
// markers to form a level, optionally descend into an embedded indent,
// then parse the rest of the line; repeat while the next line opens with
// the same marker.
func listFunc(marker rune, wrap func([]ast.ListItem) ast.Node) engine.ProdFunc {
	return func(s *engine.State) (ast.Node, bool) {
		var items []ast.ListItem
		for {
			level := s.Cursor.EatCount(marker)

			var itemContent []ast.Node
			if s.Cursor.StartsWith(":") {
				indentNode, ok := listFunc(':', func(items []ast.ListItem) ast.Node { return ast.Indent{Items: items} })(s)
				if ok {
					itemContent = append(itemContent, indentNode)
				}
			}

			// An embedded indent that ended at a newline has already
			// consumed the rest of this line.
			rest, ok := []ast.Node(nil), true
			if len(itemContent) == 0 || !s.Cursor.IsStartOfLine() {
				rest, ok = s.Next(engine.NextOptions{
					End:      []string{"\n"},
					EndAtEOS: true,
				})
			}
			if !ok {
				break
			}
			itemContent = append(itemContent, rest...)
			items = append(items, ast.ListItem{Level: level, Content: itemContent})

			if !s.Cursor.IsStartOfLine() || !s.Cursor.StartsWith(string(marker)) {
				break
			}
		}
		if len(items) == 0 {
			return nil, false
		}
		return wrap(items), true
	}
}

var descriptionDescriptor = engine.Descriptor{
	Type:         ast.DescriptionKind,
	Start:        ";",
	KeepStart:    true,
	PreCondition: startOfLine,
	Func:         parseDescription,
}

func parseDescription(s *engine.State) (ast.Node, bool) {
	s.Cursor.Eat(";")
	title, ok := s.Next(engine.NextOptions{
		End:       []string{":"},
		EndBefore: []string{"\n"},
		EndAtEOS:  true,
	})
	if !ok {
		return nil, false
	}
	var content []ast.Node
	if !s.Cursor.StartsWith("\n") && !s.Cursor.AtEnd() {
		content, _ = s.Next(engine.NextOptions{
			End:      []string{"\n"},
			EndAtEOS: true,
		})
	}
	return ast.Description{Title: ast.Trim(title), Content: ast.Trim(content)}, true
}
