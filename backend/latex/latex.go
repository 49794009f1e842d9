package latex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/tree"
)

// Writer renders a document tree as a complete LaTeX article, preamble
// included.
type Writer struct{}

// Write renders doc. It fails with an EINVALID error on any construct
// the writer does not cover.
func (Writer) Write(doc *tree.Document) (string, error) {
	p := printer{}
	p.str("\\documentclass[]{article}\n")
	p.str("\\usepackage[utf8]{inputenc}\n")
	p.str("\\usepackage[normalem]{ulem}\n")
	p.str("\\usepackage{graphicx}\n")
	p.str("\\usepackage{hyperref}\n")
	p.str("\\usepackage{listings}\n")
	p.str("\\providecommand{\\tightlist}{\\setlength{\\itemsep}{0pt}\\setlength{\\parskip}{0pt}}\n")
	p.str("\\begin{document}\n")
	if err := p.blocks(doc.Blocks); err != nil {
		return "", err
	}
	p.str("\n\\end{document}")
	tracer().Debugf("LaTeX writer produced %d bytes", p.out.Len())
	return p.out.String(), nil
}

func errUnsupported(construct string) error {
	return core.Error(core.EINVALID, "LaTeX writer cannot render %s", construct)
}

type printer struct {
	out       strings.Builder
	enumLevel int
}

func (p *printer) str(s string) {
	p.out.WriteString(s)
}

func (p *printer) ch(c byte) {
	p.out.WriteByte(c)
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
		p.ch('\n')
		if err := p.inlines(b.Inlines); err != nil {
			return err
		}
		p.ch('\n')
	case tree.CodeBlock:
		p.codeBlock(b)
	case tree.BlockQuote:
		p.str("\n\\begin{quote}\n")
		if err := p.blocks(b.Blocks); err != nil {
			return err
		}
		p.str("\n\\end{quote}\n")
	case tree.OrderedList:
		p.enumLevel++
		err := p.orderedList(b)
		p.enumLevel--
		return err
	case tree.BulletList:
		return p.bulletList(b)
	case tree.Header:
		return p.header(b)
	case tree.HorizontalRule:
		p.str("\n\\begin{center}\\rule{0.5\\linewidth}{0.5pt}\\end{center}\n")
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

func (p *printer) codeBlock(b tree.CodeBlock) {
	p.str("\n\\begin{lstlisting}")
	if len(b.Attr.Classes) > 0 {
		p.str("[language=")
		p.str(b.Attr.Classes[0])
		p.ch(']')
	}
	p.ch('\n')
	p.str(b.Text)
	p.str("\n\\end{lstlisting}\n")
}

func (p *printer) orderedList(b tree.OrderedList) error {
	p.str("\n\\begin{enumerate}")
	if b.Attr.Start != 1 {
		p.str("\n\\setcounter{enum")
		p.str(strings.Repeat("i", p.enumLevel))
		p.str("}{")
		p.str(strconv.Itoa(b.Attr.Start - 1))
		p.ch('}')
	}
	if isTight(b.Items) {
		p.str("\n\\tightlist")
	}
	for _, item := range b.Items {
		p.str("\n\\item\n")
		if err := p.blocks(item); err != nil {
			return err
		}
	}
	p.str("\n\\end{enumerate}\n")
	return nil
}

func (p *printer) bulletList(b tree.BulletList) error {
	p.str("\n\\begin{itemize}")
	if isTight(b.Items) {
		p.str("\n\\tightlist")
	}
	for _, item := range b.Items {
		p.str("\n\\item\n")
		if err := p.blocks(item); err != nil {
			return err
		}
	}
	p.str("\n\\end{itemize}\n")
	return nil
}

// isTight reports whether list items hold bare Plain content. The first
// Plain or Para block found decides.
func isTight(items [][]tree.Block) bool {
	for _, item := range items {
		for _, b := range item {
			switch b.(type) {
			case tree.Para:
				return false
			case tree.Plain:
				return true
			}
		}
	}
	return false
}

func (p *printer) header(b tree.Header) error {
	var cmd string
	switch b.Level {
	case 1:
		cmd = "\\section"
	case 2:
		cmd = "\\subsection"
	case 3:
		cmd = "\\subsubsection"
	case 4:
		cmd = "\\paragraph"
	case 5:
		cmd = "\\subparagraph"
	case 6:
		// article has no sixth sectioning level
		cmd = "\\textbf"
	default:
		return errUnsupported("headings deeper than level 6")
	}
	p.str("\n" + cmd + "{")
	if err := p.inlines(b.Inlines); err != nil {
		return err
	}
	p.str("}\n")
	return nil
}

func (p *printer) table(b tree.Table) error {
	p.str("\n\\begin{tabular}{|")
	for _, spec := range b.ColSpecs {
		switch spec.Align {
		case tree.AlignLeft:
			p.str("l|")
		case tree.AlignRight:
			p.str("r|")
		default:
			p.str("c|")
		}
	}
	p.str("} \\hline \n")
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
		rendered := make([]string, width)
		for i, cell := range cells {
			text, err := renderCell(cell)
			if err != nil {
				return err
			}
			rendered[i] = text
		}
		p.str(strings.Join(rendered, "&"))
		p.str("\\\\\\hline\n")
	}
	p.str("\\end{tabular}\n")
	return nil
}

func renderCell(cell tree.Cell) (string, error) {
	if len(cell.Blocks) == 0 {
		return "", nil
	}
	plain, ok := cell.Blocks[0].(tree.Plain)
	if !ok || len(cell.Blocks) > 1 {
		return "", errUnsupported("tables with nested blocks")
	}
	var sub printer
	if err := sub.inlines(plain.Inlines); err != nil {
		return "", err
	}
	return sub.out.String(), nil
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
		p.str("\\emph{")
		if err := p.inlines(i.Inlines); err != nil {
			return err
		}
		p.ch('}')
	case tree.Strong:
		p.str("\\textbf{")
		if err := p.inlines(i.Inlines); err != nil {
			return err
		}
		p.ch('}')
	case tree.Strikeout:
		p.str("\\sout{")
		if err := p.inlines(i.Inlines); err != nil {
			return err
		}
		p.ch('}')
	case tree.Code:
		p.str("\\texttt{")
		p.text(i.Text)
		p.ch('}')
	case tree.Space, tree.SoftBreak:
		p.ch(' ')
	case tree.LineBreak:
		p.str("\\\\\n")
	case tree.Link:
		p.str("\\href{")
		p.str(i.Target.URL)
		p.str("}{")
		if err := p.inlines(i.Inlines); err != nil {
			return err
		}
		p.ch('}')
	case tree.Image:
		p.str("\n\\includegraphics[width=\\linewidth]{")
		p.str(i.Target.URL)
		p.str("}\n")
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

// text writes s with LaTeX special characters escaped.
func (p *printer) text(s string) {
	for _, c := range s {
		switch c {
		case '&', '%', '$', '#', '_', '{', '}':
			p.ch('\\')
			p.out.WriteRune(c)
		case '~':
			p.str("\\textasciitilde{}")
		case '^':
			p.str("\\^{}")
		case '\\':
			p.str("\\textbackslash{}")
		case '`':
			p.str("\\textasciigrave{}")
		default:
			p.out.WriteRune(c)
		}
	}
}
