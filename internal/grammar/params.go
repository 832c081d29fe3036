// Package grammar builds the concrete wiki-markup production table consumed
// by internal/engine. It never flows the other way: engine knows nothing
// about wiki syntax, only about descriptors, cursors and backtracking.
package grammar

import (
	"strconv"
	"strings"

	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

// paramSet is the shared shape produced by parseParams for both links and
// templates: an ordered map of named parameters plus a slice of positional
// parameter contents.
type paramSet struct {
	named      ast.ParamMap
	positional [][]ast.Node
}

func (p *paramSet) setPositional(index int, content []ast.Node) {
	for len(p.positional) <= index {
		p.positional = append(p.positional, nil)
	}
	p.positional[index] = content
}

func (p *paramSet) setNamed(key string, content []ast.Node) {
	if p.named == nil {
		p.named = ast.NewParamMap()
	}
	p.named.Set(key, content)
}

// looksLikeKey scans rest (the cursor's remaining input) for the first of
// '=', '|', closeToken, a nested "{{" or "<", or '\n'. If '=' comes first
// and the run up to it is non-empty once trimmed, that run is a candidate
// key; a nested template or tag opening before any '=' means this segment
// is positional content, not "key=value" (its own '=' belongs to whatever
// is inside the template/tag, not to this parameter).
func looksLikeKey(rest, closeToken string) (key string, isKey bool) {
	stop := len(rest)
	eq := -1
	for i := 0; i < len(rest); i++ {
		if rest[i] == '\n' {
			stop = i
			break
		}
		if rest[i] == '=' && eq < 0 {
			eq = i
		}
		if rest[i] == '|' {
			stop = i
			break
		}
		if closeToken != "" && strings.HasPrefix(rest[i:], closeToken) {
			stop = i
			break
		}
		if strings.HasPrefix(rest[i:], "{{") || rest[i] == '<' {
			stop = i
			break
		}
	}
	if eq < 0 || eq >= stop {
		return "", false
	}
	k := strings.ToLower(strings.TrimSpace(rest[:eq]))
	return k, k != ""
}

// parseParams consumes zero or more '|'-separated segments following a
// link or template name, stopping at closeToken ("]]" or "}}"). allow
// narrows the value grammar (templates force it empty for the special
// "code" parameter name).
func parseParams(s *engine.State, closeToken string, allow *[]ast.Kind) *paramSet {
	params := &paramSet{}
	positionalIndex := 0

	for {
		if s.Cursor.StartsWith(closeToken) {
			return params
		}
		if !s.Cursor.Eat("|") {
			return params
		}

		key, isKey := looksLikeKey(s.Cursor.Rest(), closeToken)

		var content []ast.Node
		if isKey {
			s.Cursor.Advance(originalCaseKey(s, key))
			s.Cursor.Eat("=")
			valueAllow := allow
			if key == "code" {
				empty := []ast.Kind{}
				valueAllow = &empty
			}
			content, _ = s.Next(engine.NextOptions{
				EndBefore:   []string{"|", closeToken},
				BacktrackOn: atEndOfLine,
				Allow:       valueAllow,
			})
		} else {
			content, _ = s.Next(engine.NextOptions{
				EndBefore:   []string{"|", closeToken},
				BacktrackOn: atEndOfLine,
				Allow:       allow,
			})
		}

		content = ast.Trim(content)
		if isKey {
			if n, err := strconv.Atoi(key); err == nil && n >= 1 {
				params.setPositional(n-1, content)
			} else {
				params.setNamed(key, content)
			}
		} else {
			params.setPositional(positionalIndex, content)
			positionalIndex++
		}
	}
}

// originalCaseKey returns the original (untrimmed, un-lowercased) run of
// input that looksLikeKey identified as the key, so the cursor can be
// advanced by the exact rune count instead of the normalized form.
func originalCaseKey(s *engine.State, lowered string) string {
	rest := s.Cursor.Rest()
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return lowered
	}
	return rest[:eq]
}

func atEndOfLine(s *engine.State) bool {
	return s.Cursor.IsEndOfLine()
}

func textContent(nodes []ast.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if t, ok := n.(ast.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
