package engine

import "github.com/kasrell/wikiparse/ast"

// NextOptions is the complete option set accepted by State.Next.
type NextOptions struct {
	// EndAtEOS: success when the cursor reaches end-of-stream.
	EndAtEOS bool

	// End: terminators: on match, the terminator is consumed and Next
	// succeeds. Entries must already be ASCII-lowercased (Cursor.StartsWith's
	// contract).
	End []string

	// NotEnd: inhibits an End match when any of these also match at the
	// cursor (e.g. stops "''" from ending italics when "'''" follows).
	NotEnd []string

	// EndBefore: terminators: on match, Next succeeds without consuming.
	EndBefore []string

	// EndBeforeRegex: same, but regex-based.
	EndBeforeRegex *StickyRegex

	// EndOn: predicate; on true, Next succeeds without consuming.
	EndOn func(*State) bool

	// Backtrack: literal strings; a match causes the whole Next call to
	// fail (return no match).
	Backtrack []string

	// BacktrackOn: a predicate pushed onto the shared predicate stack for
	// the duration of this Next call; any active predicate returning true
	// (this call's own, or an enclosing call's) causes failure.
	BacktrackOn func(*State) bool

	// Allow, when non-nil, restricts node() to exactly this set of kinds
	// (an empty, non-nil slice means "no grammar productions at all" —
	// used to force plain-text-only parsing, e.g. template code values).
	// nil means "no restriction from this option set". node() intersects
	// an enclosing call's Allow/Disallow into the options of a declarative
	// (Next-based) descriptor; Next calls made by ad-hoc (Func) productions
	// do not inherit them.
	Allow *[]ast.Kind

	// Disallow blacklists specific kinds even when otherwise allowed.
	Disallow []ast.Kind
}
