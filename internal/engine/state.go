package engine

import (
	"fmt"
	"os"

	"github.com/kasrell/wikiparse/ast"
)

// State is the full mutable state of one parse: the cursor, the
// backtracking budget, the context stack, and the grammar table it was
// built against. A State is never shared across parses.
type State struct {
	Cursor *Cursor
	Table  []Descriptor

	BacktrackCount int
	Limit          int

	Context []ContextFrame

	// predicates is the shared stack of active BacktrackOn callbacks; any
	// of them firing fails the innermost Next call (and, per the fail
	// path, every Next call it's nested in, since each one in turn sees
	// end-of-stream-without-match or re-checks its own predicates).
	predicates []func(*State) bool

	Debug bool
}

// NewState builds a fresh engine state over input, bound to table.
func NewState(input string, table []Descriptor, backtrackLimit int, debug bool) *State {
	return &State{
		Cursor: NewCursor(input),
		Table:  table,
		Limit:  backtrackLimit,
		Debug:  debug,
	}
}

// fail centralizes the "increment the backtrack counter, abort if over
// budget" accounting every backtrack site in Next/node must perform.
func (s *State) fail() {
	s.BacktrackCount++
	if s.Debug {
		fmt.Fprintf(os.Stderr, "wikiparse: backtrack %d at line %d, offset %d: %q\n",
			s.BacktrackCount, s.Cursor.Line(), s.Cursor.Offset(), s.Cursor.Peek(40))
	}
	if s.BacktrackCount > s.Limit {
		panic(abort{err: BacktrackingLimitExceeded{Limit: s.Limit, Context: append([]ContextFrame(nil), s.Context...)}})
	}
}

func (s *State) pushContext() {
	s.Context = append(s.Context, ContextFrame{Position: s.Cursor.Save(), Snippet: s.Cursor.Peek(100)})
}

func (s *State) popContext() {
	s.Context = s.Context[:len(s.Context)-1]
}

func (s *State) pushPredicate(p func(*State) bool) {
	s.predicates = append(s.predicates, p)
}

func (s *State) popPredicate() {
	s.predicates = s.predicates[:len(s.predicates)-1]
}

func (s *State) anyPredicateFires() bool {
	for _, p := range s.predicates {
		if p(s) {
			return true
		}
	}
	return false
}

func kindAllowed(k ast.Kind, allow *[]ast.Kind, disallow []ast.Kind) bool {
	for _, d := range disallow {
		if d == k {
			return false
		}
	}
	if allow == nil {
		return true
	}
	for _, a := range *allow {
		if a == k {
			return true
		}
	}
	return false
}

// mergeAllow intersects an outer restriction with an inner one: if either
// is nil, the other wins; if both are set, only kinds permitted by both
// survive.
func mergeAllow(outer, inner *[]ast.Kind) *[]ast.Kind {
	if outer == nil {
		return inner
	}
	if inner == nil {
		return outer
	}
	var merged []ast.Kind
	for _, k := range *inner {
		for _, o := range *outer {
			if k == o {
				merged = append(merged, k)
				break
			}
		}
	}
	return &merged
}

func mergeDisallow(outer, inner []ast.Kind) []ast.Kind {
	if len(outer) == 0 {
		return inner
	}
	if len(inner) == 0 {
		return outer
	}
	merged := make([]ast.Kind, 0, len(outer)+len(inner))
	merged = append(merged, outer...)
	merged = append(merged, inner...)
	return merged
}
