package grammar

import (
	"strings"

	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

var linkDescriptor = engine.Descriptor{
	Type:  ast.LinkKind,
	Start: "[[",
	Func:  parseLink,
}

// parseLink parses [[page|params]]: a page token, '|'-separated
// parameters, mandatory "]]", and the word-character link trail.
func parseLink(s *engine.State) (ast.Node, bool) {
	page, ok := s.Next(engine.NextOptions{
		EndBefore:   []string{"|", "]]"},
		BacktrackOn: atEndOfLine,
	})
	if !ok {
		return nil, false
	}
	pageText := textContent(page)

	params := parseParams(s, "]]", nil)

	if !s.Cursor.Eat("]]") {
		return nil, false
	}

	trail := s.Cursor.EatWordChars()

	plain := false
	if strings.HasPrefix(pageText, ":") {
		pageText = pageText[1:]
		plain = true
	}

	to, anchor, _ := strings.Cut(pageText, "#")

	var content []ast.Node
	if len(params.positional) > 0 {
		last := params.positional[len(params.positional)-1]
		if len(last) == 0 {
			content = []ast.Node{ast.Text(pipeTrickTarget(to))}
		} else {
			content = append([]ast.Node{}, last...)
		}
	} else {
		content = []ast.Node{ast.Text(to)}
	}
	if trail != "" {
		content = ast.AppendString(content, trail)
	}

	return ast.Link{
		To:                   to,
		Content:              content,
		Anchor:               anchor,
		Parameters:           params.named,
		PositionalParameters: params.positional,
		Plain:                plain,
	}, true
}

// pipeTrickTarget returns the page name with any namespace prefix
// (everything up to and including the first ':') stripped, for the
// "pipe trick" (trailing '|' with empty content).
func pipeTrickTarget(to string) string {
	if i := strings.IndexByte(to, ':'); i >= 0 {
		return to[i+1:]
	}
	return to
}

var externalLinkDescriptor = engine.Descriptor{
	Type:          ast.ExternalLinkKind,
	Start:         "[",
	PostCondition: externalLinkURILike,
	Func:          parseExternalLink,
}

var externalLinkSchemes = []string{
	"http://", "https://", "ftp://", "ftps://", "sftp://", "git://", "svn://",
	"irc://", "ircs://", "//", "mailto:", "magnet:", "tel:", "urn:", "xmpp:", "geo:",
}

func externalLinkURILike(s *engine.State) bool {
	_, ok := s.Cursor.StartsWithAny(externalLinkSchemes)
	return ok
}

func parseExternalLink(s *engine.State) (ast.Node, bool) {
	uri, ok := s.Next(engine.NextOptions{
		EndBefore:   []string{" ", "]"},
		BacktrackOn: atEndOfLine,
	})
	if !ok {
		return nil, false
	}
	s.Cursor.EatWhitespace(false)
	content, ok := s.Next(engine.NextOptions{
		End:         []string{"]"},
		BacktrackOn: atEndOfLine,
	})
	if !ok {
		return nil, false
	}
	u := textContent(uri)
	if len(content) == 0 {
		content = []ast.Node{ast.Text(u)}
	}
	return ast.ExternalLink{URI: u, Content: content}, true
}
