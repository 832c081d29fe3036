package ast

// Italics is ''...'' -- or the content of the italics half of a
// BoldItalics/Bold run once split by the grammar table's ordering.
type Italics struct {
	Content []Node
}

func (Italics) Kind() Kind { return ItalicsKind }

// Bold is '''...'''.
type Bold struct {
	Content []Node
}

func (Bold) Kind() Kind { return BoldKind }

// BoldItalics is '''''...'''''.
type BoldItalics struct {
	Content []Node
}

func (BoldItalics) Kind() Kind { return BoldItalicsKind }
