package grammar

import (
	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

// tocDescriptor/notocDescriptor tag TOC markers as tag nodes named after
// the magic word itself; there is no dedicated ast.Kind for them, so they
// reuse ast.Tag with SelfClosing set.
var tocDescriptor = engine.Descriptor{
	Type:  ast.TagKind,
	Start: "__toc__",
	Func: func(s *engine.State) (ast.Node, bool) {
		return ast.Tag{Name: "toc", SelfClosing: true}, true
	},
}

var notocDescriptor = engine.Descriptor{
	Type:  ast.TagKind,
	Start: "__notoc__",
	Func: func(s *engine.State) (ast.Node, bool) {
		return ast.Tag{Name: "notoc", SelfClosing: true}, true
	},
}

var horizontalRuleDescriptor = engine.Descriptor{
	Type:         ast.HorizontalRuleKind,
	Start:        "----",
	PreCondition: startOfLine,
	Func: func(s *engine.State) (ast.Node, bool) {
		return ast.HorizontalRule{}, true
	},
}
