package engine

import "github.com/kasrell/wikiparse/ast"

// ProdFunc is an ad-hoc production: given the state positioned just past
// (or at, if KeepStart) the descriptor's Start, consume whatever it needs
// and report whether it matched.
type ProdFunc func(*State) (ast.Node, bool)

// Descriptor is one entry of the grammar table — either a declarative
// production (Next + Builder) or an ad-hoc one (Func), per the design
// notes' "tagged-variant struct holding either a built-in Next-style
// option set or a function pointer".
type Descriptor struct {
	// Type is the Kind this descriptor produces. Unused for Group entries
	// (each child descriptor carries its own Type).
	Type ast.Kind

	// Start is the literal, already-lowercased token the dispatcher
	// prefix-matches at the cursor before trying this descriptor.
	Start string

	// KeepStart, when true, leaves Start unconsumed (the production
	// re-reads it itself).
	KeepStart bool

	// PreCondition, if set, must hold (cursor unchanged) before Start is
	// even considered consumed.
	PreCondition func(*State) bool

	// PostCondition, if set, is checked immediately after Start is
	// consumed (or would have been, if KeepStart); failure rewinds to
	// entry and skips this descriptor.
	PostCondition func(*State) bool

	// Group, if non-nil, makes this a group descriptor: dispatch recurses
	// into this sub-table instead of running Func/Next.
	Group []Descriptor

	// Func is an ad-hoc production. Mutually exclusive with Next/Builder.
	Func ProdFunc

	// Next + Builder together form a declarative production: Next is
	// passed to State.Next, and a successful bare []ast.Node result is
	// wrapped into a concrete node via Builder.
	Next    *NextOptions
	Builder func([]ast.Node) ast.Node

	// ReplaceWith, if non-empty, makes this descriptor resolve immediately
	// to a literal Text value once Start/PreCondition/PostCondition pass
	// (used for HTML entity aliases).
	ReplaceWith string

	// PostProcess, if set, transforms the wrapped node before it is
	// returned. Returning nil is a programming error (engine.InternalFault).
	PostProcess func(ast.Node) ast.Node
}
