package grammar

import (
	"strings"

	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

// tagGroupDescriptor leaves the leading '<' unconsumed (KeepStart) so each
// child descriptor's own Start can be checked against the full "<..."
// token; every child consumes its own Start, '<' included.
var tagGroupDescriptor = engine.Descriptor{
	Start:     "<",
	KeepStart: true,
	Group: []engine.Descriptor{
		commentDescriptor,
		lineBreakDescriptor,
		galleryDescriptor,
		genericTagDescriptor,
	},
}

var commentDescriptor = engine.Descriptor{
	Type:  ast.CommentKind,
	Start: "<!--",
	Func:  parseComment,
}

func parseComment(s *engine.State) (ast.Node, bool) {
	body, ok := s.Next(engine.NextOptions{End: []string{"-->"}, EndAtEOS: true, Allow: &[]ast.Kind{}})
	if !ok {
		return nil, false
	}
	text := strings.Trim(textContent(body), " \t\r\n-")
	return ast.Comment{Content: []string{text}}, true
}

var lineBreakDescriptor = engine.Descriptor{
	Type:  ast.LineBreakKind,
	Start: "<br",
	Func:  parseLineBreak,
}

func parseLineBreak(s *engine.State) (ast.Node, bool) {
	if !tagNameTerminator(s) {
		return nil, false
	}
	parseAttributes(s)
	s.Cursor.Eat("/")
	s.Cursor.EatWhitespace(false)
	if !s.Cursor.Eat(">") {
		return nil, false
	}
	return ast.LineBreak{}, true
}

func tagNameTerminator(s *engine.State) bool {
	r, ok := s.Cursor.PeekRune()
	if !ok {
		return true
	}
	return r == ' ' || r == '\t' || r == '>' || r == '/'
}

// voidTags never require a closing tag even when not
// written as "/>".
var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true,
}

// rawTextTags have their content parsed with the empty allow-list (no
// nested wiki markup), per §4.8's "special tags enforce specific
// allow/disallow lists".
var rawTextTags = map[string]bool{
	"nowiki": true, "pre": true, "source": true, "syntaxhighlight": true, "code": true, "math": true,
}

var genericTagDescriptor = engine.Descriptor{
	Start: "<",
	Func:  parseGenericTag,
}

// parseGenericTag handles every tag name not already claimed by a more
// specific descriptor above it in the group (comment, lineBreak, gallery): read
// the name, parse attributes, handle self-closing tags, and otherwise
// parse content up to the matching closing tag (leniently) or an outer
// terminator.
func parseGenericTag(s *engine.State) (ast.Node, bool) {
	name := readTagName(s)
	if name == "" {
		return nil, false
	}
	if !tagNameTerminator(s) {
		return nil, false
	}

	attrs := parseAttributes(s)

	selfClosing := s.Cursor.Eat("/")
	s.Cursor.EatWhitespace(false)
	if !s.Cursor.Eat(">") {
		return nil, false
	}
	if selfClosing || voidTags[name] {
		return ast.Tag{Name: name, Attributes: attrs, SelfClosing: true}, true
	}

	allow := (*[]ast.Kind)(nil)
	if rawTextTags[name] {
		empty := []ast.Kind{}
		allow = &empty
	}

	closer := "</" + name
	content, _ := s.Next(engine.NextOptions{
		End:       []string{closer},
		EndBefore: []string{"]]", "}}", "\n|", "\n!"},
		EndAtEOS:  true,
		Allow:     allow,
	})
	// If the End match fired, "</name" was just consumed; the lenient
	// close grammar ("</name   >") only leaves optional whitespace and
	// '>' to mop up. If Next instead stopped at EOS or an outer
	// terminator, these are harmless no-ops.
	s.Cursor.EatWhitespace(false)
	s.Cursor.Eat(">")

	if name == "nowiki" && len(content) == 0 {
		return nil, true
	}

	return ast.Tag{Name: name, Attributes: attrs, Content: ast.Trim(content)}, true
}

func readTagName(s *engine.State) string {
	var b strings.Builder
	for {
		r, ok := s.Cursor.PeekRune()
		if !ok {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' {
			b.WriteRune(r)
			s.Cursor.AdvanceOne()
			continue
		}
		break
	}
	return strings.ToLower(b.String())
}

// parseAttributes implements §4.8's attribute grammar: whitespace
// separated name or name=value, quoted or bare.
func parseAttributes(s *engine.State) ast.AttrMap {
	attrs := ast.NewAttrMap()
	for {
		s.Cursor.EatWhitespace(true)
		r, ok := s.Cursor.PeekRune()
		if !ok || r == '>' || r == '/' {
			break
		}
		name := readAttrName(s)
		if name == "" {
			break
		}
		s.Cursor.EatWhitespace(false)
		if s.Cursor.Eat("=") {
			s.Cursor.EatWhitespace(true)
			value := readAttrValue(s)
			attrs.Set(name, value)
		} else {
			attrs.Set(name, true)
		}
	}
	return attrs
}

func readAttrName(s *engine.State) string {
	var b strings.Builder
	for {
		r, ok := s.Cursor.PeekRune()
		if !ok || r == ' ' || r == '\t' || r == '\n' || r == '=' || r == '>' || r == '/' {
			break
		}
		b.WriteRune(r)
		s.Cursor.AdvanceOne()
	}
	return b.String()
}

func readAttrValue(s *engine.State) string {
	if s.Cursor.Eat("\"") {
		var b strings.Builder
		for {
			r, ok := s.Cursor.PeekRune()
			if !ok || r == '"' {
				break
			}
			b.WriteRune(r)
			s.Cursor.AdvanceOne()
		}
		s.Cursor.Eat("\"")
		return b.String()
	}
	if s.Cursor.Eat("'") {
		var b strings.Builder
		for {
			r, ok := s.Cursor.PeekRune()
			if !ok || r == '\'' {
				break
			}
			b.WriteRune(r)
			s.Cursor.AdvanceOne()
		}
		s.Cursor.Eat("'")
		return b.String()
	}
	var b strings.Builder
	for {
		r, ok := s.Cursor.PeekRune()
		if !ok || r == ' ' || r == '\t' || r == '\n' || r == '>' || r == '/' {
			break
		}
		b.WriteRune(r)
		s.Cursor.AdvanceOne()
	}
	return b.String()
}
