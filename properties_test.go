package wikiparse

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kasrell/wikiparse/ast"
	"pgregory.net/rapid"
)

var markupAlphabet = []rune("ab '\"[]{}|=<>#*:; \n-")

func randomMarkupLike(t *rapid.T, maxLen int) string {
	runes := rapid.SliceOfN(rapid.SampledFrom(markupAlphabet), 0, maxLen).Draw(t, "runes")
	var b strings.Builder
	for _, r := range runes {
		b.WriteRune(r)
	}
	return b.String()
}

// TestParseIsDeterministic checks that the same input and options always
// produce the same AST.
func TestParseIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := randomMarkupLike(t, 64)

		first, err1 := Parse(input, Options{})
		second, err2 := Parse(input, Options{})

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("nondeterministic error outcome for %q", input)
		}
		if len(first) != len(second) {
			t.Fatalf("nondeterministic node count for %q: %d vs %d", input, len(first), len(second))
		}
		for i := range first {
			if !reflect.DeepEqual(first[i], second[i]) {
				t.Fatalf("nondeterministic node %d for %q: %#v vs %#v", i, input, first[i], second[i])
			}
		}
	})
}

// TestAdjacentTextAlwaysCoalesced checks that no successful parse ever
// yields two adjacent Text values at the top level.
func TestAdjacentTextAlwaysCoalesced(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := randomMarkupLike(t, 48)

		nodes, err := Parse(input, Options{})
		if err != nil {
			return
		}
		for i := 1; i < len(nodes); i++ {
			_, prevText := nodes[i-1].(ast.Text)
			_, curText := nodes[i].(ast.Text)
			if prevText && curText {
				t.Fatalf("adjacent Text nodes at %d/%d for %q: %#v", i-1, i, input, nodes)
			}
		}
	})
}

// TestBacktrackLimitIsRespected parses with a random backtracking limit
// and ReturnError set, and checks that any error returned is one of the
// package's fault types (BacktrackingLimitExceeded, ParseFailure or
// InternalFault), never some other shape.
func TestBacktrackLimitIsRespected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := randomMarkupLike(t, 32)
		limit := rapid.IntRange(10, 1000).Draw(t, "limit")

		_, err := Parse(input, Options{BacktrackingLimit: limit, ReturnError: true})
		if err == nil {
			return
		}
		switch err.(type) {
		case BacktrackingLimitExceeded, ParseFailure, InternalFault:
		default:
			t.Fatalf("unexpected error type %T for %q", err, input)
		}
	})
}
