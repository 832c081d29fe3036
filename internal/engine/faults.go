package engine

import (
	"fmt"
	"strings"
)

// ContextFrame is one entry of the annotated context stack: a position
// pushed during descent, plus up to 100 trailing characters of source at
// that position, to aid grammar debugging (§7).
type ContextFrame struct {
	Position Position
	Snippet  string
}

func (f ContextFrame) String() string {
	return fmt.Sprintf("line %d, offset %d: %q", f.Position.Line, f.Position.Offset, f.Snippet)
}

// ParseFailure means an expected token was absent. Inside the engine a
// missing token is a normal "no match" value flowing through Next/node's
// boolean returns; a ParseFailure is built only when the top-level parse
// fails, and then reaches the caller like any other fault (panicked in
// ThrowError mode, returned in ReturnError mode).
type ParseFailure struct {
	Message string
	Context []ContextFrame
}

func (e ParseFailure) Error() string {
	var b strings.Builder
	b.WriteString("parse failure: ")
	b.WriteString(e.Message)
	for _, f := range e.Context {
		b.WriteString("\n  at ")
		b.WriteString(f.String())
	}
	return b.String()
}

// BacktrackingLimitExceeded means the input is pathological or the
// grammar is diverging. Callers must treat it as fatal, not retryable.
type BacktrackingLimitExceeded struct {
	Limit   int
	Context []ContextFrame
}

func (e BacktrackingLimitExceeded) Error() string {
	return fmt.Sprintf("backtracking limit exceeded (%d events)", e.Limit)
}

// InternalFault means a postProcess function returned "no match" — a
// programming bug in a grammar production, never a property of the
// input.
type InternalFault struct {
	Message string
}

func (e InternalFault) Error() string {
	return "internal error: " + e.Message
}

// abort is the payload panicked by State when a fault must escape deep
// recursion immediately, the same "bail out of arbitrarily nested
// descent with a structured error" pattern used by the standard library's
// own go/parser. Recovered once, at the top of Parse.
type abort struct {
	err error
}

// RecoverAbort unwraps a value obtained from recover() if and only if it
// is one of this package's own abort panics, so callers at a Parse entry
// point can tell "this engine aborted deliberately" from "something else
// panicked" and re-panic the latter.
func RecoverAbort(r any) (error, bool) {
	a, ok := r.(abort)
	if !ok {
		return nil, false
	}
	return a.err, true
}
