package engine

import "github.com/kasrell/wikiparse/ast"

// Next assembles a list of nodes from the cursor outward until one of its
// termination options fires. It is the engine's single entry point for
// "consume a contiguous region"; node() (and through it, productions)
// call back into Next with narrower options to parse nested regions.
func (s *State) Next(opts NextOptions) ([]ast.Node, bool) {
	if !opts.EndAtEOS && len(opts.End) == 0 && len(opts.EndBefore) == 0 &&
		opts.EndBeforeRegex == nil && opts.EndOn == nil &&
		len(opts.Backtrack) == 0 && opts.BacktrackOn == nil {
		return nil, true
	}

	start := s.Cursor.Save()

	if opts.BacktrackOn != nil {
		s.pushPredicate(opts.BacktrackOn)
		defer s.popPredicate()
	}

	var content []ast.Node
	var plain []rune

	flush := func() {
		if len(plain) > 0 {
			content = ast.AppendString(content, string(plain))
			plain = nil
		}
	}

	for {
		if s.Cursor.AtEnd() && opts.EndAtEOS {
			flush()
			return content, true
		}

		if s.anyPredicateFires() || matchesAny(s.Cursor, opts.Backtrack) ||
			(s.Cursor.AtEnd() && !opts.EndAtEOS) {
			s.fail()
			s.Cursor.Restore(start)
			return nil, false
		}

		if tok, ok := s.Cursor.StartsWithAny(opts.End); ok {
			if _, inhibited := s.Cursor.StartsWithAny(opts.NotEnd); !inhibited {
				s.Cursor.Eat(tok)
				flush()
				return content, true
			}
		}

		if _, ok := s.Cursor.StartsWithAny(opts.EndBefore); ok {
			flush()
			return content, true
		}
		if opts.EndBeforeRegex != nil {
			if _, ok := s.Cursor.MatchesRegex(*opts.EndBeforeRegex); ok {
				flush()
				return content, true
			}
		}
		if opts.EndOn != nil && opts.EndOn(s) {
			flush()
			return content, true
		}

		s.pushContext()
		n, ok := s.node(opts.Allow, opts.Disallow)
		s.popContext()

		if ok {
			flush()
			content = ast.Append(content, n)
			continue
		}

		plain = append(plain, s.Cursor.AdvanceOne())
	}
}

func matchesAny(c *Cursor, prefixes []string) bool {
	_, ok := c.StartsWithAny(prefixes)
	return ok
}
