package engine

import "github.com/kasrell/wikiparse/ast"

// node walks the grammar table in declaration order and dispatches the
// first matching, non-filtered descriptor.
func (s *State) node(allow *[]ast.Kind, disallow []ast.Kind) (ast.Node, bool) {
	return s.dispatch(s.Table, allow, disallow)
}

func (s *State) dispatch(table []Descriptor, allow *[]ast.Kind, disallow []ast.Kind) (ast.Node, bool) {
	for _, d := range table {
		if d.Group == nil && !kindAllowed(d.Type, allow, disallow) {
			continue
		}

		entry := s.Cursor.Save()

		if !s.Cursor.StartsWith(d.Start) {
			continue
		}

		if d.PreCondition != nil && !d.PreCondition(s) {
			continue
		}

		if !d.KeepStart {
			s.Cursor.Eat(d.Start)
		}

		if d.PostCondition != nil && !d.PostCondition(s) {
			s.Cursor.Restore(entry)
			continue
		}

		if d.Group != nil {
			n, ok := s.dispatch(d.Group, allow, disallow)
			if !ok {
				s.Cursor.Restore(entry)
				continue
			}
			return s.finish(d, n)
		}

		if d.ReplaceWith != "" {
			return s.finish(d, ast.Text(d.ReplaceWith))
		}

		var result ast.Node
		var ok bool
		if d.Func != nil {
			result, ok = d.Func(s)
		} else if d.Next != nil {
			merged := *d.Next
			merged.Allow = mergeAllow(allow, d.Next.Allow)
			merged.Disallow = mergeDisallow(disallow, d.Next.Disallow)
			var nodes []ast.Node
			nodes, ok = s.Next(merged)
			if ok {
				if d.Builder != nil {
					result = d.Builder(nodes)
				} else {
					result = builtinNode{kind: d.Type, content: nodes}
				}
			}
		}

		if !ok {
			s.fail()
			s.Cursor.Restore(entry)
			continue
		}

		return s.finish(d, result)
	}

	return nil, false
}

func (s *State) finish(d Descriptor, n ast.Node) (ast.Node, bool) {
	if d.PostProcess != nil {
		n = d.PostProcess(n)
		if n == nil {
			panic(abort{err: InternalFault{Message: "postProcess returned no node for " + d.Type.String()}})
		}
	}
	return n, true
}

// builtinNode is the default wrapping of a bare []ast.Node result from a
// declarative (Next+no-Builder) descriptor into {type, content: list},
// per §4.3 step 7. Productions that need a richer shape always supply a
// Builder instead.
type builtinNode struct {
	kind    ast.Kind
	content []ast.Node
}

func (b builtinNode) Kind() ast.Kind      { return b.kind }
func (b builtinNode) Content() []ast.Node { return b.content }
