package block

import "fmt"

// RowArityError reports a row whose cell count does not match the table's
// declared column count. It indicates a programming defect in the caller, not
// a recoverable runtime condition.
type RowArityError struct {
	Want int // declared column count
	Got  int // cells supplied
}

func (e *RowArityError) Error() string {
	return fmt.Sprintf("block: row has %d cells, table declares %d columns", e.Got, e.Want)
}

// Cell is one table cell: a content block plus its alignment and padding. The
// content is a Text or a Stack of texts; its styles travel with the text runs.
type Cell struct {
	Content Block
	Align   Align
	Padding Padding
}

// NewCell returns a left-aligned cell with no padding.
func NewCell(content Block) Cell {
	return Cell{Content: content, Align: AlignLeft}
}

// Row is a validated sequence of cells, one per declared column.
type Row struct {
	Cells []Cell
}

// Table is the reusable grid model: relative column-width weights and an
// ordered list of rows. The renderer distributes the available width
// proportionally to the weights.
type Table struct {
	Weights   []int
	Rows      []Row
	Frameless bool
}

func (*Table) block() {}

// NewTable declares a table with the given relative column-width weights.
func NewTable(weights ...int) *Table {
	return &Table{Weights: weights}
}

// SetFrameless switches the table to the frameless decoration mode: no grid
// borders are drawn. Returns the table for chaining.
func (t *Table) SetFrameless() *Table {
	t.Frameless = true
	return t
}

// AppendRow validates and appends one row built from the full cell sequence.
// It returns a *RowArityError when the cell count does not match the declared
// column count; no partially built row is ever stored.
func (t *Table) AppendRow(cells ...Cell) error {
	if len(cells) != len(t.Weights) {
		return &RowArityError{Want: len(t.Weights), Got: len(cells)}
	}
	t.Rows = append(t.Rows, Row{Cells: cells})
	return nil
}
