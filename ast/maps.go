package ast

import orderedmap "github.com/wk8/go-ordered-map/v2"

// ParamMap holds template/link keyword parameters in source order. A plain
// Go map would make any code that ranges over parameters (AstToText, the
// CLI printer, golden-output tests) non-deterministic even though the
// parse tree shape itself is deterministic.
type ParamMap = *orderedmap.OrderedMap[string, []Node]

// AttrMap holds tag/table attribute values in source order. A value is
// either a string or the boolean true (a bare attribute name with no
// "=value").
type AttrMap = *orderedmap.OrderedMap[string, any]

// NewParamMap returns an empty, ready-to-use ParamMap.
func NewParamMap() ParamMap {
	return orderedmap.New[string, []Node]()
}

// NewAttrMap returns an empty, ready-to-use AttrMap.
func NewAttrMap() AttrMap {
	return orderedmap.New[string, any]()
}
