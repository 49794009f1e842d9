package markdown

import (
	"strings"

	"github.com/npillmayer/mdtree/tree"
)

// indentedCode is an open indented code block, collecting lines with 4 or
// more columns of indent.
type indentedCode struct {
	lines []string
}

func newIndentedCode(ln line) *indentedCode {
	ln.moveIndent(4)
	return &indentedCode{lines: []string{ln.full()}}
}

func (b *indentedCode) next(ln line) lineResult {
	if ln.indent < 4 {
		return checkBlockKnownIndent(ln).intoLineResultParagraph(true)
	}
	ln.moveIndent(4)
	b.lines = append(b.lines, ln.full())
	return none()
}

func (b *indentedCode) pushBlank(indent int) {
	if indent < 4 {
		indent = 4
	}
	b.lines = append(b.lines, strings.Repeat(" ", indent-4))
}

func (b *indentedCode) collectDefinitions(defs *definitions) {}

func (b *indentedCode) finish(defs *definitions) tree.Block {
	lines := b.lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return tree.CodeBlock{Attr: tree.EmptyAttr(), Text: strings.Join(lines, "\n")}
}

// fencedCode is an open fenced code block. It closes on a fence of the
// same char at least as long as the opening one, or with its container.
type fencedCode struct {
	indent    int
	fenceSize int
	fenceChar rune
	info      string
	content   strings.Builder
}

// checkFencedCode tests for an opening code fence, assuming the line
// starts with '`' or '~'.
func checkFencedCode(ln line) checkResult {
	it := newIter(ln.rest())
	fenceSize := it.skipWhileEq(ln.first) + 1
	if fenceSize < 3 {
		return checkedText(ln)
	}
	it.skipWhitespace()
	// an info string on a backtick fence must not contain backticks
	if ln.first == '`' && it.anyEq('`') {
		return checkedText(ln)
	}
	return checkedNew(&fencedCode{
		indent:    ln.indent,
		fenceSize: fenceSize,
		fenceChar: ln.first,
		info:      it.restTrimmed(),
	})
}

func (b *fencedCode) next(ln line) lineResult {
	if ln.indent < 4 && ln.first == b.fenceChar {
		it := newIter(ln.rest())
		if it.skipWhileEq(b.fenceChar)+1 >= b.fenceSize {
			it.skipWhitespace()
			if it.ended() {
				return doneSelf()
			}
		}
	}
	b.push(ln)
	return none()
}

func (b *fencedCode) push(ln line) {
	ln.moveIndentCapped(b.indent)
	ln.pushFull(&b.content)
	b.content.WriteByte('\n')
}

func (b *fencedCode) pushBlank(indent int) {
	indent -= b.indent
	for i := 0; i < indent; i++ {
		b.content.WriteByte(' ')
	}
	b.content.WriteByte('\n')
}

func (b *fencedCode) collectDefinitions(defs *definitions) {}

func (b *fencedCode) finish(defs *definitions) tree.Block {
	info := b.info
	if n := strings.IndexByte(info, ' '); n >= 0 {
		info = info[:n]
	}
	attr := tree.EmptyAttr()
	if info != "" {
		attr.Classes = []string{info}
	}
	return tree.CodeBlock{Attr: attr, Text: strings.TrimSuffix(b.content.String(), "\n")}
}
