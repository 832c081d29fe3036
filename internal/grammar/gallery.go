package grammar

import (
	"strings"

	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

var galleryDescriptor = engine.Descriptor{
	Type:  ast.GalleryKind,
	Start: "<gallery",
	Func:  parseGallery,
}

// parseGallery reuses the generic tag grammar for the <gallery> wrapper
// element, then treats its raw content as one target[|caption] link per
// non-empty line.
func parseGallery(s *engine.State) (ast.Node, bool) {
	if !tagNameTerminator(s) {
		return nil, false
	}
	attrs := parseAttributes(s)
	s.Cursor.Eat("/")
	s.Cursor.EatWhitespace(false)
	if !s.Cursor.Eat(">") {
		return nil, false
	}

	body, _ := s.Next(engine.NextOptions{
		End:      []string{"</gallery>"},
		EndAtEOS: true,
		Allow:    &[]ast.Kind{},
	})

	var items []ast.Link
	for _, line := range strings.Split(textContent(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "|" {
			continue
		}
		target, caption, hasCaption := strings.Cut(line, "|")
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		content := []ast.Node{ast.Text(target)}
		if hasCaption {
			caption = strings.TrimSpace(caption)
			if caption != "" {
				content = []ast.Node{ast.Text(caption)}
			}
		}
		items = append(items, ast.Link{To: target, Content: content})
	}

	return ast.Gallery{Attributes: attrs, Items: items}, true
}
