package ast

// Preformatted is a run of consecutive lines each starting with a single
// leading space.
type Preformatted struct {
	Content []Node
}

func (Preformatted) Kind() Kind { return PreformattedKind }
