// Package ast defines the node types produced by a wiki markup parse.
//
// The tree is a pure tree (never cyclic): every node's Content (or
// equivalent field) holds further nodes or, for the Text leaf, a bare
// string. Consecutive Text siblings are always coalesced into one Text —
// see Append.
package ast

// Kind identifies the concrete type of a Node without a type switch.
type Kind int

const (
	TextKind Kind = iota
	ItalicsKind
	BoldKind
	BoldItalicsKind
	LinkKind
	ExternalLinkKind
	TemplateKind
	HeadingKind
	UnorderedListKind
	OrderedListKind
	IndentKind
	DescriptionKind
	PreformattedKind
	HorizontalRuleKind
	LineBreakKind
	CommentKind
	TableKind
	TableRowKind
	TableCellKind
	TagKind
	GalleryKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "text"
	case ItalicsKind:
		return "italics"
	case BoldKind:
		return "bold"
	case BoldItalicsKind:
		return "boldItalics"
	case LinkKind:
		return "link"
	case ExternalLinkKind:
		return "externalLink"
	case TemplateKind:
		return "template"
	case HeadingKind:
		return "heading"
	case UnorderedListKind:
		return "unorderedList"
	case OrderedListKind:
		return "orderedList"
	case IndentKind:
		return "indent"
	case DescriptionKind:
		return "description"
	case PreformattedKind:
		return "preformatted"
	case HorizontalRuleKind:
		return "horizontalRule"
	case LineBreakKind:
		return "lineBreak"
	case CommentKind:
		return "comment"
	case TableKind:
		return "table"
	case TableRowKind:
		return "table-row"
	case TableCellKind:
		return "table-cell"
	case TagKind:
		return "tag"
	case GalleryKind:
		return "gallery"
	default:
		return "unknown"
	}
}
