package typst

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/tree"
)

// Writer renders a document tree as Typst markup.
type Writer struct{}

// Write renders doc. It fails with an EINVALID error on any construct
// the writer does not cover.
func (Writer) Write(doc *tree.Document) (string, error) {
	p := printer{}
	if err := p.blocks(doc.Blocks); err != nil {
		return "", err
	}
	tracer().Debugf("Typst writer produced %d bytes", p.out.Len())
	return p.out.String(), nil
}

func errUnsupported(construct string) error {
	return core.Error(core.EINVALID, "Typst writer cannot render %s", construct)
}

// printer accumulates output. Inside list items every fresh line is
// prefixed with the current hanging indent.
type printer struct {
	out      strings.Builder
	indent   string
	inEmph   bool
	inStrong bool
}

func (p *printer) str(s string) {
	p.out.WriteString(s)
}

func (p *printer) ch(c byte) {
	p.out.WriteByte(c)
}

func (p *printer) newLine() {
	p.ch('\n')
	p.str(p.indent)
}

func (p *printer) blocks(blocks []tree.Block) error {
	for _, b := range blocks {
		if err := p.block(b); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) block(block tree.Block) error {
	switch b := block.(type) {
	case tree.Plain:
		return p.inlines(b.Inlines)
	case tree.Para:
		p.newLine()
		if err := p.inlines(b.Inlines); err != nil {
			return err
		}
		p.newLine()
	case tree.CodeBlock:
		p.codeBlock(b)
	case tree.BlockQuote:
		p.newLine()
		p.str("#quote(block: true)[")
		if err := p.blocks(b.Blocks); err != nil {
			return err
		}
		p.ch(']')
		p.newLine()
	case tree.OrderedList:
		return p.orderedList(b)
	case tree.BulletList:
		return p.bulletList(b)
	case tree.Header:
		return p.header(b)
	case tree.HorizontalRule:
		p.str("\n---\n")
	case tree.Table:
		return p.table(b)
	case tree.LineBlock:
		return errUnsupported("line block")
	case tree.RawBlock:
		return errUnsupported("raw block")
	case tree.DefinitionList:
		return errUnsupported("definition list")
	case tree.Figure:
		return errUnsupported("figure")
	case tree.Div:
		return errUnsupported("div")
	default:
		return errUnsupported(fmt.Sprintf("%T", block))
	}
	return nil
}

// codeBlock emits a fenced raw block. The fence is one backtick longer
// than any fence-like line of the content, with a minimum of three.
func (p *printer) codeBlock(b tree.CodeBlock) {
	size := 3
	for _, line := range strings.Split(b.Text, "\n") {
		if n := len(line); n > 0 && line == strings.Repeat("`", n) && n+1 > size {
			size = n + 1
		}
	}
	fence := strings.Repeat("`", size)
	p.newLine()
	p.str(fence)
	if len(b.Attr.Classes) > 0 {
		p.str(b.Attr.Classes[0])
	}
	for _, line := range strings.Split(b.Text, "\n") {
		p.newLine()
		p.str(line)
	}
	p.newLine()
	p.str(fence)
	p.newLine()
}

func (p *printer) orderedList(b tree.OrderedList) error {
	p.newLine()
	for n, item := range b.Items {
		marker := strconv.Itoa(b.Attr.Start+n) + ". "
		p.str(marker)
		saved := p.indent
		p.indent += strings.Repeat(" ", len(marker))
		err := p.blocks(item)
		p.indent = saved
		if err != nil {
			return err
		}
		p.newLine()
	}
	p.newLine()
	return nil
}

func (p *printer) bulletList(b tree.BulletList) error {
	p.newLine()
	saved := p.indent
	p.indent += "  "
	for _, item := range b.Items {
		p.str("- ")
		if err := p.blocks(item); err != nil {
			p.indent = saved
			return err
		}
		p.newLine()
	}
	p.indent = saved
	p.newLine()
	return nil
}

func (p *printer) header(b tree.Header) error {
	p.newLine()
	p.str(strings.Repeat("=", b.Level))
	p.ch(' ')
	if err := p.inlines(b.Inlines); err != nil {
		return err
	}
	p.newLine()
	return nil
}

func (p *printer) table(b tree.Table) error {
	p.newLine()
	p.str("#table(\n")
	p.str("columns: ")
	p.str(strconv.Itoa(len(b.ColSpecs)))
	p.str(",\nalign: (col, row) => (")
	for _, spec := range b.ColSpecs {
		switch spec.Align {
		case tree.AlignLeft:
			p.str("left,")
		case tree.AlignRight:
			p.str("right,")
		case tree.AlignCenter:
			p.str("center,")
		default:
			p.str("auto,")
		}
	}
	p.str(").at(col),\n")
	rows := b.Head.Rows
	if len(b.Bodies) > 0 {
		rows = append(rows[:len(rows):len(rows)], b.Bodies[0].Rows...)
	}
	width := len(b.ColSpecs)
	for _, row := range rows {
		cells := row.Cells
		if len(cells) > width {
			cells = cells[:width]
		}
		for _, cell := range cells {
			p.ch('[')
			if err := p.cell(cell); err != nil {
				return err
			}
			p.str("],\n")
		}
	}
	p.ch(')')
	return nil
}

func (p *printer) cell(cell tree.Cell) error {
	if len(cell.Blocks) == 0 {
		return nil
	}
	plain, ok := cell.Blocks[0].(tree.Plain)
	if !ok || len(cell.Blocks) > 1 {
		return errUnsupported("tables with nested blocks")
	}
	return p.inlines(plain.Inlines)
}

func (p *printer) inlines(inlines []tree.Inline) error {
	for _, inl := range inlines {
		if err := p.inline(inl); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) inline(inline tree.Inline) error {
	switch i := inline.(type) {
	case tree.Str:
		p.text(i.Text)
	case tree.Emph:
		if p.inEmph {
			return p.inlines(i.Inlines)
		}
		p.ch('_')
		p.inEmph = true
		err := p.inlines(i.Inlines)
		p.inEmph = false
		if err != nil {
			return err
		}
		p.ch('_')
	case tree.Strong:
		if p.inStrong {
			return p.inlines(i.Inlines)
		}
		p.ch('*')
		p.inStrong = true
		err := p.inlines(i.Inlines)
		p.inStrong = false
		if err != nil {
			return err
		}
		p.ch('*')
	case tree.Strikeout:
		p.str("#strike[")
		if err := p.inlines(i.Inlines); err != nil {
			return err
		}
		p.ch(']')
	case tree.Code:
		p.code(i.Text)
	case tree.Space, tree.SoftBreak:
		p.ch(' ')
	case tree.LineBreak:
		p.str("\\\n")
	case tree.Link:
		p.str("#link(\"")
		p.str(i.Target.URL)
		p.str("\")[")
		if err := p.inlines(i.Inlines); err != nil {
			return err
		}
		p.ch(']')
	case tree.Image:
		p.str("#figure(image(\"")
		p.str(i.Target.URL)
		p.str("\", width: 100%))")
	case tree.Underline:
		return errUnsupported("underline")
	case tree.Superscript:
		return errUnsupported("superscript")
	case tree.Subscript:
		return errUnsupported("subscript")
	case tree.SmallCaps:
		return errUnsupported("small caps")
	case tree.Quoted:
		return errUnsupported("quoted text")
	case tree.Cite:
		return errUnsupported("citation")
	case tree.Math:
		return errUnsupported("math")
	case tree.RawInline:
		return errUnsupported("raw inline")
	case tree.Note:
		return errUnsupported("note")
	case tree.Span:
		return errUnsupported("span")
	default:
		return errUnsupported(fmt.Sprintf("%T", inline))
	}
	return nil
}

// code emits an inline raw span, delimited by one backtick more than the
// longest backtick run of the content.
func (p *printer) code(s string) {
	longest, current := 0, 0
	for _, c := range s {
		if c == '`' {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	delim := strings.Repeat("`", longest+1)
	p.str(delim)
	if longest > 0 {
		p.ch(' ')
	}
	p.str(s)
	if longest > 0 {
		p.ch(' ')
	}
	p.str(delim)
}

// text writes s with Typst markup characters escaped. Digits are escaped
// too so literal text never forms a list marker or term.
func (p *printer) text(s string) {
	for _, c := range s {
		switch c {
		case '\\', '{', '}', '[', ']', '(', ')', '#', '$', '%', '^', '*', '_', '&', '~', '`',
			'0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			p.ch('\\')
		}
		p.out.WriteRune(c)
	}
}
