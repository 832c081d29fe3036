package ast

// Gallery is a <gallery>...</gallery> block: each non-empty,
// non-bare-pipe line inside becomes one Link item.
type Gallery struct {
	Attributes AttrMap
	Items      []Link
}

func (Gallery) Kind() Kind { return GalleryKind }
