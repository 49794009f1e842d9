package markdown

import (
	"strings"

	"github.com/npillmayer/mdtree/tree"

	"github.com/npillmayer/mdtree/input/markdown/inline"
)

// table is an open pipe table. The header row is taken over from the
// paragraph the delimiter row interrupted.
type table struct {
	alignments []tree.Alignment
	rows       [][]string
}

// tableHeaderColumns counts the columns a line would have as a table
// header. Unescaped '|' separates cells; leading and trailing pipes do
// not open columns of their own.
func tableHeaderColumns(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "|" {
		return 0
	}
	count := 1
	escape := false
	detected := false
	for i, c := range trimmed {
		if i == 0 {
			escape = c == '\\'
			continue
		}
		if detected && c != ' ' && c != '\t' {
			detected = false
			count++
		}
		if c == '\\' {
			escape = !escape
		} else {
			if c == '|' {
				detected = !escape
			}
			escape = false
		}
	}
	return count
}

// checkTableDelimiter tests whether the line is a delimiter row matching
// the column count of the paragraph's last line. On success the paragraph
// loses that line to the new table.
func checkTableDelimiter(ln line, p *paragraph) (*table, bool) {
	if p.tableHeaderLength == 0 {
		return nil, false
	}
	it := newIter(ln.text)
	it.nextIfEq('|')
	alignments := make([]tree.Alignment, 0, p.tableHeaderLength)
	for i := 0; i < p.tableHeaderLength; i++ {
		it.skipWhitespace()
		left := it.nextIfEq(':')
		if !it.skipWhileEqMinOne('-') {
			return nil, false
		}
		right := it.nextIfEq(':')
		it.skipWhitespace()
		if !it.nextIfEq('|') && i != p.tableHeaderLength-1 {
			return nil, false
		}
		switch {
		case left && right:
			alignments = append(alignments, tree.AlignCenter)
		case left:
			alignments = append(alignments, tree.AlignLeft)
		case right:
			alignments = append(alignments, tree.AlignRight)
		default:
			alignments = append(alignments, tree.AlignDefault)
		}
	}
	it.skipWhitespace()
	if !it.ended() {
		return nil, false
	}
	t := &table{alignments: alignments}
	t.push(p.lastLine())
	p.trimLastLine()
	return t, true
}

func (t *table) next(ln line) lineResult {
	return checkBlock(ln).intoLineResult(true, func(s line) lineResult {
		t.push(s.text)
		return none()
	})
}

// push splits a line into cells on unescaped pipes. Excess cells are
// dropped, missing ones stay empty.
func (t *table) push(text string) {
	it := newIter(strings.TrimSpace(text))
	it.nextIfEq('|')
	row := make([]string, 0, len(t.alignments))
	var cell strings.Builder
	for {
		c, ok := it.next()
		switch {
		case ok && c == '\\':
			if it.nextIfEq('|') {
				cell.WriteByte('|')
			} else {
				cell.WriteByte('\\')
			}
		case !ok || c == '|':
			row = append(row, cell.String())
			if len(row) == len(t.alignments) {
				t.rows = append(t.rows, row)
				return
			}
			cell.Reset()
			if !ok {
				for len(row) < len(t.alignments) {
					row = append(row, "")
				}
				t.rows = append(t.rows, row)
				return
			}
		default:
			cell.WriteRune(c)
		}
	}
}

func (t *table) collectDefinitions(defs *definitions) {}

func (t *table) finish(defs *definitions) tree.Block {
	rows := make([][]tree.Cell, 0, len(t.rows))
	for _, row := range t.rows {
		cells := make([]tree.Cell, 0, len(row))
		for _, text := range row {
			cells = append(cells, tree.NewCell(inline.Parse(text, defs)))
		}
		rows = append(rows, cells)
	}
	return tree.NewTable(rows, t.alignments)
}
