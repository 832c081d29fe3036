package wikiparse

import (
	"regexp"
	"strings"

	"github.com/kasrell/wikiparse/ast"
)

// TextOptions configures AstToText.
type TextOptions struct {
	// HeadingCallback, if set, is invoked with each heading's rendered
	// text and level as headings are encountered.
	HeadingCallback func(text string, level int)
}

// AstToText collapses a parsed document to plain text: markup is
// discarded, comments and line breaks disappear, and a line holding only
// spaces or tabs between two newlines is emptied ("\n  \n" becomes
// "\n\n"); consecutive empty lines are kept as they are.
func AstToText(nodes []ast.Node, opts TextOptions) string {
	var b strings.Builder
	for _, n := range nodes {
		renderNode(&b, n, opts)
	}
	return collapseBlankRuns(b.String())
}

var blankRunPattern = regexp.MustCompile(`\n[ \t]*\n`)

func collapseBlankRuns(s string) string {
	return blankRunPattern.ReplaceAllString(s, "\n\n")
}

func renderContent(b *strings.Builder, content []ast.Node, opts TextOptions) {
	for _, n := range content {
		renderNode(b, n, opts)
	}
}

func renderNode(b *strings.Builder, n ast.Node, opts TextOptions) {
	switch v := n.(type) {
	case ast.Text:
		b.WriteString(string(v))
	case ast.Comment:
		// yields empty text
	case ast.Heading:
		renderContent(b, v.Content, opts)
		if opts.HeadingCallback != nil {
			opts.HeadingCallback(flatten(v.Content), v.Level)
		}
		b.WriteString("\n\n")
	case ast.TableRow:
		renderContent(b, nodesFromCells(v.Content), opts)
		b.WriteString("\n")
	case ast.TableCell:
		renderContent(b, v.Content, opts)
		b.WriteString("\t")
	case ast.Table:
		renderContent(b, v.Caption, opts)
		for _, row := range v.Content {
			renderNode(b, row, opts)
		}
	case ast.Italics:
		renderContent(b, v.Content, opts)
	case ast.Bold:
		renderContent(b, v.Content, opts)
	case ast.BoldItalics:
		renderContent(b, v.Content, opts)
	case ast.Link:
		renderContent(b, v.Content, opts)
	case ast.ExternalLink:
		renderContent(b, v.Content, opts)
	case ast.UnorderedList:
		renderItems(b, v.Items, opts)
	case ast.OrderedList:
		renderItems(b, v.Items, opts)
	case ast.Indent:
		renderItems(b, v.Items, opts)
	case ast.Description:
		renderContent(b, v.Title, opts)
		renderContent(b, v.Content, opts)
	case ast.Preformatted:
		renderContent(b, v.Content, opts)
	case ast.HorizontalRule:
		renderContent(b, v.Content, opts)
	case ast.LineBreak:
		// no textual representation
	case ast.Tag:
		renderContent(b, v.Content, opts)
	case ast.Gallery:
		for _, item := range v.Items {
			renderContent(b, item.Content, opts)
			b.WriteString("\n")
		}
	case ast.Template:
		b.WriteString(templateText(v))
	}
}

func nodesFromCells(cells []ast.TableCell) []ast.Node {
	out := make([]ast.Node, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func renderItems(b *strings.Builder, items []ast.ListItem, opts TextOptions) {
	for _, item := range items {
		renderContent(b, item.Content, opts)
		b.WriteString("\n")
	}
}

// templateText renders the handful of common templates whose text
// rendering is worth special-casing (language/pronunciation wrappers,
// bible verse references, audio captions); every other template
// contributes nothing to the plain-text rendering.
func templateText(t ast.Template) string {
	switch {
	case t.Name == "zh" || t.Name == "lang-zh":
		for _, key := range []string{"c", "t", "s", "p"} {
			if t.Parameters != nil {
				if v, ok := t.Parameters.Get(key); ok {
					return flatten(v)
				}
			}
		}
		return ""
	case strings.HasPrefix(t.Name, "lang-") || strings.HasPrefix(t.Name, "ipa-") ||
		strings.HasPrefix(t.Name, "ipac-") || t.Name == "iast" || t.Name == "korean" || t.Name == "ipa":
		return firstPositional(t)
	case t.Name == "bibleverse":
		var parts []string
		for _, p := range t.PositionalParameters {
			if p != nil {
				parts = append(parts, flatten(p))
			}
		}
		return strings.Join(parts, " ")
	case (t.Name == "audio" || t.Name == "audio-nohelp" || t.Name == "lang") && len(t.PositionalParameters) >= 2:
		return flatten(t.PositionalParameters[1])
	default:
		return ""
	}
}

func firstPositional(t ast.Template) string {
	for _, p := range t.PositionalParameters {
		if p != nil {
			return flatten(p)
		}
	}
	return ""
}

func flatten(content []ast.Node) string {
	var b strings.Builder
	renderContent(&b, content, TextOptions{})
	return b.String()
}
