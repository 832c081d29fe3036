package grammar

import (
	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

var boldItalicsDescriptor = engine.Descriptor{
	Type:  ast.BoldItalicsKind,
	Start: "'''''",
	Next: &engine.NextOptions{
		End:         []string{"'''''"},
		BacktrackOn: atEndOfLine,
		Backtrack:   []string{"]]"},
	},
	Builder: func(c []ast.Node) ast.Node { return ast.BoldItalics{Content: c} },
}

var boldDescriptor = engine.Descriptor{
	Type:  ast.BoldKind,
	Start: "'''",
	Next: &engine.NextOptions{
		End:         []string{"'''"},
		BacktrackOn: atEndOfLine,
		Backtrack:   []string{"]]"},
	},
	Builder: func(c []ast.Node) ast.Node { return ast.Bold{Content: c} },
}

var italicsDescriptor = engine.Descriptor{
	Type:  ast.ItalicsKind,
	Start: "''",
	Next: &engine.NextOptions{
		End:      []string{"''"},
		NotEnd:   []string{"'''"},
		Disallow: []ast.Kind{ast.PreformattedKind},
	},
	Builder: func(c []ast.Node) ast.Node { return ast.Italics{Content: c} },
}

// Table is the ordered production table consumed by internal/engine.
// Declaration order is significant: it is the tie-break for overlapping
// starts (boldItalics before bold before italics) and the dispatch order
// generally.
var Table = []engine.Descriptor{
	linkDescriptor,
	externalLinkDescriptor,
	boldItalicsDescriptor,
	boldDescriptor,
	italicsDescriptor,
	templateDescriptor,
	unorderedListDescriptor,
	orderedListDescriptor,
	indentDescriptor,
	descriptionDescriptor,
	headingDescriptor,
	entityGroupDescriptor,
	tocDescriptor,
	notocDescriptor,
	preformattedDescriptor,
	tagGroupDescriptor,
	tableDescriptor,
	horizontalRuleDescriptor,
}
