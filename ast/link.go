package ast

// Link is a [[...]] wikilink.
//
// To is the page name, split on '#' from any Anchor. Content is the final
// positional parameter if the link carried any positional parameters,
// otherwise []Node{Text(To)}. Parameters/PositionalParameters are nil (not merely
// empty) when the link carried none of that kind, matching the "optional
// field" contract in the data model.
type Link struct {
	To                   string
	Content              []Node
	Anchor               string
	Parameters           ParamMap
	PositionalParameters [][]Node
	Plain                bool
}

func (Link) Kind() Kind { return LinkKind }

// ExternalLink is a single-bracket external link, e.g. [http://example.com text].
type ExternalLink struct {
	URI     string
	Content []Node
}

func (ExternalLink) Kind() Kind { return ExternalLinkKind }
