package wikiparse

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentParsesDoNotShareState runs many parses in parallel, each
// building its own engine.State, and checks each one's output matches
// what the same input produces sequentially.
func TestConcurrentParsesDoNotShareState(t *testing.T) {
	inputs := []string{
		"Some ''italic'' text",
		"{{template|a=1|b=2}}",
		"[[Link|text]]",
		"* one\n* two\n* three\n",
		"=Heading=\n",
		"a\n----\nb",
		"{| \n|-\n|a|b\n|}",
	}

	want := make([][]byte, len(inputs))
	for i, in := range inputs {
		nodes, err := Parse(in, Options{})
		if err != nil {
			t.Fatalf("sequential baseline parse failed for %q: %v", in, err)
		}
		want[i] = []byte(AstToText(nodes, TextOptions{}))
	}

	var g errgroup.Group
	for run := 0; run < 20; run++ {
		for i, in := range inputs {
			i, in := i, in
			g.Go(func() error {
				nodes, err := Parse(in, Options{})
				if err != nil {
					return err
				}
				got := AstToText(nodes, TextOptions{})
				if got != string(want[i]) {
					t.Errorf("concurrent parse of %q diverged: got %q, want %q", in, got, want[i])
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent parse group failed: %v", err)
	}
}
