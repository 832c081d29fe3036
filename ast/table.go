package ast

// Table is a {| ... |} block.
type Table struct {
	Attributes AttrMap
	Caption    []Node
	Content    []TableRow
}

func (Table) Kind() Kind { return TableKind }

// TableRow is one row of a Table: either the implicit first row, or a row
// introduced by a '|-' separator. Comments is set only when one or more
// HTML comments appeared between the preceding row separator and this
// row's first cell.
type TableRow struct {
	Attributes AttrMap
	Content    []TableCell
	Comments   []Comment
}

func (TableRow) Kind() Kind { return TableRowKind }

// TableCell is one '|' (data) or '!' (header) cell.
type TableCell struct {
	Header     bool
	Attributes AttrMap
	Content    []Node
}

func (TableCell) Kind() Kind { return TableCellKind }
