package tree

// Alignment is the alignment of a table column or cell.
type Alignment int

// Column alignments.
const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// ColWidth is the width of a table column as a fraction of the text width.
// The zero value denotes the default width.
type ColWidth struct {
	Width float64
	Set   bool
}

// ColSpec describes a single table column.
type ColSpec struct {
	Align Alignment
	Width ColWidth
}

// Cell is one table cell.
type Cell struct {
	Attr    Attr
	Align   Alignment
	RowSpan int
	ColSpan int
	Blocks  []Block
}

// Row is one table row.
type Row struct {
	Attr  Attr
	Cells []Cell
}

// TableHead is the head section of a table.
type TableHead struct {
	Attr Attr
	Rows []Row
}

// TableBody is one body section of a table. Its head rows and the number of
// row-head columns are unused by Markdown input but kept for AST fidelity.
type TableBody struct {
	Attr           Attr
	RowHeadColumns int
	Head           []Row
	Rows           []Row
}

// TableFoot is the foot section of a table.
type TableFoot struct {
	Attr Attr
	Rows []Row
}

// Caption is a table or figure caption.
type Caption struct {
	Short  []Inline
	Blocks []Block
}

// Table is a table block.
type Table struct {
	Attr     Attr
	Caption  Caption
	ColSpecs []ColSpec
	Head     TableHead
	Bodies   []TableBody
	Foot     TableFoot
}

// NewCell creates a default cell spanning one row and one column. Non-empty
// content is wrapped in a single Plain block.
func NewCell(inlines []Inline) Cell {
	c := Cell{Attr: EmptyAttr(), RowSpan: 1, ColSpan: 1}
	if len(inlines) > 0 {
		c.Blocks = []Block{Plain{Inlines: inlines}}
	}
	return c
}

// NewRow creates a row with exactly size cells. Excess cells are dropped,
// missing cells are filled with empty ones.
func NewRow(cells []Cell, size int) Row {
	if len(cells) > size {
		cells = cells[:size]
	}
	for len(cells) < size {
		cells = append(cells, NewCell(nil))
	}
	return Row{Attr: EmptyAttr(), Cells: cells}
}

// NewTable creates a table with one column per alignment. The first row
// becomes the single header row, remaining rows form one body section.
// Rows are normalized to the column count with NewRow.
func NewTable(rows [][]Cell, alignments []Alignment) Table {
	size := len(alignments)
	specs := make([]ColSpec, size)
	for i, a := range alignments {
		specs[i] = ColSpec{Align: a}
	}
	if len(rows) == 0 {
		tracer().Errorf("table without a header row")
		rows = [][]Cell{nil}
	}
	head := TableHead{Attr: EmptyAttr(), Rows: []Row{NewRow(rows[0], size)}}
	body := TableBody{Attr: EmptyAttr()}
	for _, r := range rows[1:] {
		body.Rows = append(body.Rows, NewRow(r, size))
	}
	return Table{
		Attr:     EmptyAttr(),
		ColSpecs: specs,
		Head:     head,
		Bodies:   []TableBody{body},
		Foot:     TableFoot{Attr: EmptyAttr()},
	}
}
