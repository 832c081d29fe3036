package engine

import "github.com/dlclark/regexp2"

// StickyRegex is an anchored-at-position matcher: MatchAt only reports a
// match when it starts at index 0 of the string handed to it, i.e. the
// caller's cursor position. Built on github.com/dlclark/regexp2. It backs
// NextOptions.EndBeforeRegex; internal/grammar currently defines no regex
// productions.
type StickyRegex struct {
	re *regexp2.Regexp
}

// MustCompileSticky compiles pattern (a regexp2/.NET-flavored pattern,
// with no leading anchor needed — MatchAt enforces the anchor) and panics
// on a malformed pattern, so it can be used in package-level var
// initializers.
func MustCompileSticky(pattern string) StickyRegex {
	re, err := regexp2.Compile(pattern, regexp2.RE2|regexp2.Unicode)
	if err != nil {
		panic("engine: invalid regex " + pattern + ": " + err.Error())
	}
	return StickyRegex{re: re}
}

// MatchAt reports whether the regex matches starting at the very first
// rune of s, returning the matched substring.
func (s StickyRegex) MatchAt(rest string) (string, bool) {
	m, err := s.re.FindStringMatch(rest)
	if err != nil || m == nil || m.Index != 0 {
		return "", false
	}
	return m.String(), true
}
