package grammar

import (
	"github.com/kasrell/wikiparse/ast"
	"github.com/kasrell/wikiparse/internal/engine"
)

var tableDescriptor = engine.Descriptor{
	Type:  ast.TableKind,
	Start: "{|",
	Func:  parseTable,
}

// parseTable parses a {| ... |} table: attributes, an optional |+
// caption, then a sequence of rows separated by |- or left implicit.
func parseTable(s *engine.State) (ast.Node, bool) {
	// Table attributes end at the first newline; parse them from that line
	// alone so the scan cannot run on into the rows.
	attrLine := s.Cursor.RestOfLine()
	attrs := parseAttributes(engine.NewState(attrLine, nil, s.Limit, false))
	s.Cursor.Advance(attrLine)
	s.Cursor.EatWhitespace(false)
	s.Cursor.Eat("\n")

	var caption []ast.Node
	if s.Cursor.StartsWith("|+") {
		s.Cursor.Eat("|+")
		caption, _ = s.Next(engine.NextOptions{End: []string{"\n"}, EndAtEOS: true})
		caption = ast.Trim(caption)
	}

	var rows []ast.TableRow
	var pendingComments []ast.Comment

	for {
		s.Cursor.EatWhitespace(true)

		if s.Cursor.StartsWith("|}") {
			s.Cursor.Eat("|}")
			return ast.Table{Attributes: attrs, Caption: caption, Content: rows}, true
		}
		if s.Cursor.AtEnd() {
			return nil, false
		}

		if s.Cursor.StartsWith("<!--") {
			n, ok := parseComment(s)
			if ok {
				pendingComments = append(pendingComments, n.(ast.Comment))
			}
			continue
		}

		if s.Cursor.StartsWith("|-") {
			s.Cursor.Eat("|-")
			row := parseTableRow(s)
			row.Comments = pendingComments
			pendingComments = nil
			rows = append(rows, row)
			continue
		}

		if s.Cursor.StartsWith("|") || s.Cursor.StartsWith("!") {
			row := parseTableRow(s)
			row.Comments = pendingComments
			pendingComments = nil
			rows = append(rows, row)
			continue
		}

		// Unrecognized content between rows; consume one unit to avoid an
		// infinite loop and keep scanning for the next row/close.
		s.Cursor.AdvanceOne()
	}
}

func parseTableRow(s *engine.State) ast.TableRow {
	s.Cursor.EatWhitespace(true)
	attrs := ast.NewAttrMap()
	if !s.Cursor.StartsWith("|") && !s.Cursor.StartsWith("!") {
		attrs = parseRowAttributes(s)
	}

	var cells []ast.TableCell
	for {
		header := s.Cursor.StartsWith("!")
		plain := s.Cursor.StartsWith("|")
		if !header && !plain {
			break
		}
		if plain && s.Cursor.StartsWith("|-") {
			break
		}
		if plain && s.Cursor.StartsWith("|}") {
			break
		}
		if header {
			s.Cursor.Eat("!")
		} else {
			s.Cursor.Eat("|")
		}
		for {
			cells = append(cells, parseTableCell(s, header))
			sameLineSep := "||"
			if header {
				sameLineSep = "!!"
			}
			if !s.Cursor.Eat(sameLineSep) {
				break
			}
		}
	}
	return ast.TableRow{Attributes: attrs, Content: cells}
}

func parseRowAttributes(s *engine.State) ast.AttrMap {
	save := s.Cursor.Save()
	attrs := parseAttributes(s)
	s.Cursor.EatWhitespace(false)
	if !s.Cursor.Eat("\n") {
		s.Cursor.Restore(save)
		return ast.NewAttrMap()
	}
	return attrs
}

// parseTableCell parses one cell's optional "attrs|" prefix and its
// content, ending at the next '||'/'!!' same-line separator, a newline
// starting a new '|'/'!' line, or the table close.
func parseTableCell(s *engine.State, header bool) ast.TableCell {
	sameLineSep := "||"
	if header {
		sameLineSep = "!!"
	}

	save := s.Cursor.Save()
	attrs := ast.AttrMap(nil)
	if candidate, content := tryCellAttributes(s); candidate {
		attrs = content
	} else {
		s.Cursor.Restore(save)
	}

	content, _ := s.Next(engine.NextOptions{
		EndBefore: []string{sameLineSep, "\n|", "\n!", "|}", "\n|}"},
		EndAtEOS:  true,
	})
	return ast.TableCell{Header: header, Attributes: attrs, Content: ast.Trim(content)}
}

// tryCellAttributes speculatively parses "name=value ... |" before cell
// content; if no unescaped '|' terminates the run on the same line (or a
// '||'/'!!' appears first), the attempt is abandoned.
func tryCellAttributes(s *engine.State) (bool, ast.AttrMap) {
	save := s.Cursor.Save()
	rest := s.Cursor.RestOfLine()
	hasPipe := false
	for i := 0; i < len(rest); i++ {
		if rest[i] == '|' {
			if i+1 < len(rest) && rest[i+1] == '|' {
				break
			}
			hasPipe = true
			break
		}
	}
	if !hasPipe {
		return false, nil
	}
	attrs := parseAttributes(s)
	if !s.Cursor.Eat("|") {
		s.Cursor.Restore(save)
		return false, nil
	}
	return true, attrs
}
