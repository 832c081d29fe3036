// Package wikiparse converts wiki markup into a structured AST.
package wikiparse

import (
	"fmt"
	"os"

	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
	"github.com/kasrell/wikiparse/internal/grammar"
)

type (
	ParseFailure              = engine.ParseFailure
	BacktrackingLimitExceeded = engine.BacktrackingLimitExceeded
	InternalFault             = engine.InternalFault
)

// DefaultBacktrackingLimit bounds the total backtrack events across a
// parse, so pathological input aborts instead of hanging.
const DefaultBacktrackingLimit = 50000

// Options configures a parse.
type Options struct {
	// BacktrackingLimit overrides DefaultBacktrackingLimit when nonzero.
	BacktrackingLimit int

	// ThrowError panics with the parse fault instead of returning it, so
	// a caller that wants faults to behave like any other unrecovered
	// error (crash the program, or be caught by its own recover) can opt
	// into that instead of checking the returned error.
	ThrowError bool

	// ReturnError returns the fault object (as a second value) on
	// failure instead of (nil, nil), when ThrowError is false.
	ReturnError bool

	// Debug emits a human-readable backtracking trace to stderr.
	Debug bool
}

// WikiParser is a reusable parse configuration. Each call to Parse builds
// a fresh engine state; a WikiParser itself holds no per-parse state and
// is safe for concurrent use.
type WikiParser struct {
	opts Options
}

// New returns a WikiParser configured with opts.
func New(opts Options) *WikiParser {
	return &WikiParser{opts: opts}
}

// Parse is the package-level convenience entry point, equivalent to
// New(opts).Parse(input).
func Parse(input string, opts Options) ([]ast.Node, error) {
	return New(opts).Parse(input)
}

// Parse converts input into a document: a flat list of top-level nodes.
//
// On success, err is always nil. On failure: if ThrowError is set, the
// fault is (re-)panicked instead of being returned at all, so the caller
// must recover it like any other panic; else if ReturnError is set, the
// fault is returned as err with a nil node list; else both return values
// are nil (and, if Debug is set, the fault is logged to stderr first).
func (p *WikiParser) Parse(input string) (nodes []ast.Node, err error) {
	limit := p.opts.BacktrackingLimit
	if limit == 0 {
		limit = DefaultBacktrackingLimit
	}

	state := engine.NewState(input, grammar.Table, limit, p.opts.Debug)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fault, ok := engine.RecoverAbort(r)
		if !ok {
			panic(r)
		}
		nodes, err = p.handleFault(fault)
	}()

	result, ok := state.Next(engine.NextOptions{EndAtEOS: true})
	if !ok {
		return p.handleFault(engine.ParseFailure{Message: "parse did not consume the entire input"})
	}
	return result, nil
}

func (p *WikiParser) handleFault(fault error) ([]ast.Node, error) {
	if p.opts.Debug {
		fmt.Fprintln(os.Stderr, "wikiparse: parse fault:", fault)
	}
	if p.opts.ThrowError {
		panic(fault)
	}
	if p.opts.ReturnError {
		return nil, fault
	}
	return nil, nil
}
