package engine

import "strings"

// Cursor is a position over an input string, kept as a rune slice so that
// offsets index Unicode scalar values (not bytes) in O(1), and a parallel
// ASCII-lowercased view of identical length for case-insensitive prefix
// matching. Folding is ASCII-only: locale-sensitive case folding can
// change a string's length, which would break the one-to-one alignment
// the lowercase view depends on, and the grammar's literal tokens ('{{',
// "''", tag names, ...) are all ASCII anyway.
type Cursor struct {
	runes []rune
	lower []rune
	pos   int
	line  int
}

// NewCursor builds a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	runes := []rune(input)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = asciiLower(r)
	}
	return &Cursor{runes: runes, lower: lower, pos: 0, line: 1}
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Position is a saved (offset, line) pair; save it before a speculative
// parse and restore it on failure.
type Position struct {
	Offset int
	Line   int
}

func (c *Cursor) Save() Position { return Position{Offset: c.pos, Line: c.line} }

func (c *Cursor) Restore(p Position) { c.pos = p.Offset; c.line = p.Line }

func (c *Cursor) Offset() int { return c.pos }
func (c *Cursor) Line() int   { return c.line }

func (c *Cursor) AtEnd() bool { return c.pos >= len(c.runes) }

func (c *Cursor) remaining() int { return len(c.runes) - c.pos }

// StartsWith reports whether prefix (already ASCII-lowercased) matches the
// input at the cursor, case-insensitively.
func (c *Cursor) StartsWith(prefix string) bool {
	pr := []rune(prefix)
	if len(pr) == 0 || c.remaining() < len(pr) {
		return len(pr) == 0
	}
	for i, r := range pr {
		if c.lower[c.pos+i] != r {
			return false
		}
	}
	return true
}

// StartsWithAny reports whether any of prefixes matches at the cursor, and
// returns the first one that did (so callers can Eat it without a second
// lookup).
func (c *Cursor) StartsWithAny(prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if c.StartsWith(p) {
			return p, true
		}
	}
	return "", false
}

// Eat advances past prefix if it matches, and reports success. prefix must
// already be lowercased, matching StartsWith's contract.
func (c *Cursor) Eat(prefix string) bool {
	if !c.StartsWith(prefix) {
		return false
	}
	c.Advance(prefix)
	return true
}

// Advance moves the cursor forward by the rune-length of s, incrementing
// the line counter once per '\n' consumed. s is interpreted as "this many
// runes of original input", not literally re-scanned against the input;
// callers only ever pass strings they already know matched at the cursor.
func (c *Cursor) Advance(s string) {
	for _, r := range s {
		if r == '\n' {
			c.line++
		}
		c.pos++
	}
}

// AdvanceOne consumes exactly one rune and returns it. Callers must check
// !AtEnd() first.
func (c *Cursor) AdvanceOne() rune {
	r := c.runes[c.pos]
	if r == '\n' {
		c.line++
	}
	c.pos++
	return r
}

// EatCount greedily consumes ch and returns how many were consumed.
func (c *Cursor) EatCount(ch rune) int {
	n := 0
	for !c.AtEnd() && c.runes[c.pos] == ch {
		c.AdvanceOne()
		n++
	}
	return n
}

// EatWhitespace consumes spaces and tabs, and newlines too when
// newlineAllowed is set.
func (c *Cursor) EatWhitespace(newlineAllowed bool) {
	for !c.AtEnd() {
		r := c.runes[c.pos]
		if r == ' ' || r == '\t' || (newlineAllowed && r == '\n') {
			c.AdvanceOne()
			continue
		}
		break
	}
}

// IsStartOfLine reports whether the cursor is at offset 0 or immediately
// after a newline.
func (c *Cursor) IsStartOfLine() bool {
	return c.pos == 0 || c.runes[c.pos-1] == '\n'
}

// IsEndOfLine reports whether the cursor is at end-of-stream or at a '\n'.
func (c *Cursor) IsEndOfLine() bool {
	return c.AtEnd() || c.runes[c.pos] == '\n'
}

// Peek returns the next n runes (fewer at end-of-stream) without
// consuming them, for building fault-context snippets.
func (c *Cursor) Peek(n int) string {
	end := c.pos + n
	if end > len(c.runes) {
		end = len(c.runes)
	}
	return string(c.runes[c.pos:end])
}

// Rest returns every remaining rune as a string, for regex matching and
// for the final unconsumed-suffix checks. Not cheap — O(remaining) — but
// only ever called by the regex/lookahead paths, never the hot
// character-at-a-time loop.
func (c *Cursor) Rest() string {
	return string(c.runes[c.pos:])
}

// PeekRune returns the rune at the cursor without consuming it.
func (c *Cursor) PeekRune() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.runes[c.pos], true
}

// MatchesRegex reports whether re matches exactly at the cursor (its match
// starts at index 0 of Rest()), returning the matched text.
func (c *Cursor) MatchesRegex(re StickyRegex) (string, bool) {
	return re.MatchAt(c.Rest())
}

// EatWordChars greedily consumes a run of "word" characters (ASCII
// letters/digits/underscore) for the link-trail rule. This is a
// deliberately simple \w, ASCII-only rather than locale-sensitive; see
// DESIGN.md for the reasoning.
func (c *Cursor) EatWordChars() string {
	start := c.pos
	for !c.AtEnd() {
		r := c.runes[c.pos]
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			c.AdvanceOne()
			continue
		}
		break
	}
	return string(c.runes[start:c.pos])
}

// RestOfLine returns the remaining input up to (not including) the next
// '\n', or to end-of-stream if there is none.
func (c *Cursor) RestOfLine() string {
	rest := c.Rest()
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}
