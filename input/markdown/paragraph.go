package markdown

import (
	"strings"

	"github.com/npillmayer/mdtree/tree"

	"github.com/npillmayer/mdtree/input/markdown/inline"
)

// paragraph is an open paragraph. Every appended line re-evaluates the
// candidates that depend on a paragraph being open: a setext underline, a
// table delimiter row matching the previous line, and the mark that the
// last line could serve as a table header.
type paragraph struct {
	content           string
	tableHeaderLength int // columns of the last line read as a table header, 0 if none
	lineStart         int // offset of the last line within content
	setext            int // setext heading level, 0 for a plain paragraph
}

func newParagraph(ln line) *paragraph {
	return &paragraph{
		content:           ln.text,
		tableHeaderLength: tableHeaderColumns(ln.text),
	}
}

func (p *paragraph) next(ln line) lineResult {
	if ln.indent >= 4 {
		p.pushHeaderCheck(ln)
		return none()
	}
	var checked checkResult
	switch ln.first {
	case '=':
		return p.pushCheckSetext(ln)
	case '#':
		checked = checkHeading(ln)
	case '_':
		checked = checkThematicBreak(ln)
	case '`', '~':
		checked = checkFencedCode(ln)
	case '>':
		checked = checkedNew(newBlockQuote(ln))
	case '*':
		checked = checkListStarParagraph(ln)
	case '-':
		dash := checkListDashParagraph(ln)
		if dash.setext {
			p.setext = 2
			return doneSelf()
		}
		checked = dash.check
	case '+':
		checked = checkListPlusParagraph(ln)
	case '1':
		checked = checkListNumberParagraph(ln)
	default:
		checked = checkedText(ln)
	}
	return checked.intoLineResult(true, p.pushFullCheck)
}

// nextContinuation handles a lazy continuation line, i.e. one following
// the paragraph out of its container.
func (p *paragraph) nextContinuation(ln line) lineResult {
	return checkBlockKnownIndent(ln).intoLineResult(true, func(s line) lineResult {
		p.pushHeaderNoIndentCheck(s)
		return none()
	})
}

func (p *paragraph) nextIndentedContinuation(ln line) {
	p.push(ln.text)
}

// pushCheckSetext tests for a '=' setext underline, pushing the line as
// text otherwise.
func (p *paragraph) pushCheckSetext(ln line) lineResult {
	whitespace := false
	for _, c := range ln.text {
		switch {
		case c == '=' && !whitespace:
		case c == ' ' || c == '\t':
			whitespace = true
		default:
			return p.pushFullCheck(ln)
		}
	}
	p.setext = 1
	return doneSelf()
}

// pushFullCheck tests for a table delimiter row before pushing the line.
func (p *paragraph) pushFullCheck(ln line) lineResult {
	if t, ok := checkTableDelimiter(ln, p); ok {
		if p.lineStart == 0 {
			return newBlock(t)
		}
		return doneSelfAndNew(t)
	}
	p.push(ln.text)
	p.tableHeaderLength = tableHeaderColumns(ln.text)
	return none()
}

func (p *paragraph) pushHeaderCheck(ln line) {
	p.push(ln.text)
	p.tableHeaderLength = tableHeaderColumns(ln.text)
}

func (p *paragraph) pushHeaderNoIndentCheck(ln line) {
	p.push(ln.text)
	if ln.indent > 0 {
		p.tableHeaderLength = 0
	} else {
		p.tableHeaderLength = tableHeaderColumns(ln.text)
	}
}

func (p *paragraph) push(text string) {
	p.content += "\n"
	p.lineStart = len(p.content)
	p.content += strings.TrimRight(text, " \t")
}

func (p *paragraph) lastLine() string {
	return p.content[p.lineStart:]
}

func (p *paragraph) trimLastLine() {
	if p.lineStart == 0 {
		p.content = ""
	} else {
		p.content = p.content[:p.lineStart-1]
	}
}

// collectDefinitions harvests link reference definitions from the start
// of the paragraph and removes them from the content.
func (p *paragraph) collectDefinitions(defs *definitions) {
	it := newIter(p.content)
	current := p.content
	changed := false
loop:
	for {
		if !it.nextIfEq('[') {
			break
		}
		label, ok := it.untilUnescaped(']')
		if !ok || len(label) > 999 || strings.TrimSpace(label) == "" {
			break
		}
		if !it.nextIfEq(':') {
			break
		}
		it.skipWhitespaceNewline()
		dest, ok := it.linkDestination()
		if !ok {
			break
		}
		whitespace := it.skipWhitespaceMinOne()
		newline := it.nextIfEq('\n')
		title, hasTitle := "", false
		switch c, peeked := it.peek(); {
		case peeked && (c == '"' || c == '\''):
			if !whitespace && !newline {
				break loop
			}
			it.next()
			title, hasTitle = it.untilUnescaped(c)
			if !hasTitle {
				break loop
			}
		case peeked && c == '(':
			if !whitespace && !newline {
				break loop
			}
			it.next()
			title, hasTitle = it.untilUnescapedExcept(')', '(')
			if !hasTitle {
				break loop
			}
		case peeked && !newline:
			break loop
		}
		if hasTitle {
			it.skipWhitespace()
			if c, peeked := it.peek(); peeked && c != '\n' {
				break
			}
			it.next()
		}
		defs.add(label, dest, title)
		current = it.restString()
		changed = true
	}
	if changed {
		tracer().Debugf("paragraph shed link definitions, %d bytes left", len(current))
		p.content = current
	}
}

func (p *paragraph) finish(defs *definitions) tree.Block {
	if p.content == "" {
		return nil
	}
	parsed := inline.Parse(p.content, defs)
	if p.setext > 0 {
		return tree.NewHeader(p.setext, parsed)
	}
	return tree.Para{Inlines: parsed}
}
