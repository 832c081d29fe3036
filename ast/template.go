package ast

// Template is a {{...}} transclusion. Numeric-looking keys (after
// trim+lowercase, parseable as a positive integer) populate
// PositionalParameters[key-1]; every other key populates Parameters.
type Template struct {
	Name                 string
	Parameters           ParamMap
	PositionalParameters [][]Node
}

func (Template) Kind() Kind { return TemplateKind }
