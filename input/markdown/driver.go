package markdown

import (
	"github.com/npillmayer/mdtree/tree"
)

// builder is a block under construction. Once the block phase is complete
// and all link reference definitions are collected, finish resolves the
// builder into a tree block; builders without content report nil.
type builder interface {
	collectDefinitions(defs *definitions)
	finish(defs *definitions) tree.Block
}

// lineResult tells the driver what a line did to the current block.
type lineResult struct {
	kind resultKind
	blk  builder
}

type resultKind int8

const (
	resultNone             resultKind = iota // line consumed, block stays open
	resultDoneSelf                           // line closed the current block
	resultNew                                // line replaced the (empty) current block
	resultDone                               // line produced a complete block
	resultDoneSelfAndNew                     // line closed the current block and opened a new one
	resultDoneSelfAndOther                   // line closed the current block and produced a complete one
)

func none() lineResult                      { return lineResult{} }
func doneSelf() lineResult                  { return lineResult{kind: resultDoneSelf} }
func newBlock(b builder) lineResult         { return lineResult{kind: resultNew, blk: b} }
func doneBlock(b builder) lineResult        { return lineResult{kind: resultDone, blk: b} }
func doneSelfAndNew(b builder) lineResult   { return lineResult{kind: resultDoneSelfAndNew, blk: b} }
func doneSelfAndOther(b builder) lineResult { return lineResult{kind: resultDoneSelfAndOther, blk: b} }

func (r lineResult) isDoneOrNew() bool {
	return r.kind == resultNew || r.kind == resultDone
}

func (r lineResult) closesCurrent() bool {
	return r.kind == resultDoneSelfAndNew || r.kind == resultDoneSelfAndOther
}

// checkResult is the outcome of testing a line for a block start.
type checkResult struct {
	kind checkKind
	blk  builder
	text line
}

type checkKind int8

const (
	checkNew  checkKind = iota // line opens a block
	checkDone                  // line is a complete block on its own
	checkText                  // line is plain text
)

func checkedNew(b builder) checkResult  { return checkResult{kind: checkNew, blk: b} }
func checkedDone(b builder) checkResult { return checkResult{kind: checkDone, blk: b} }
func checkedText(ln line) checkResult   { return checkResult{kind: checkText, text: ln} }

// intoLineResult translates a check outcome, delegating plain text lines to
// textFn. doneSelf tells whether the current block closes when the check
// found a new block.
func (c checkResult) intoLineResult(doneSelfFirst bool, textFn func(line) lineResult) lineResult {
	switch {
	case c.kind == checkNew && doneSelfFirst:
		return doneSelfAndNew(c.blk)
	case c.kind == checkNew:
		return newBlock(c.blk)
	case c.kind == checkDone && doneSelfFirst:
		return doneSelfAndOther(c.blk)
	case c.kind == checkDone:
		return doneBlock(c.blk)
	}
	return textFn(c.text)
}

// intoLineResultParagraph is intoLineResult with plain text opening a new
// paragraph.
func (c checkResult) intoLineResultParagraph(doneSelfFirst bool) lineResult {
	return c.intoLineResult(doneSelfFirst, func(s line) lineResult {
		if doneSelfFirst {
			return doneSelfAndNew(newParagraph(s))
		}
		return newBlock(newParagraph(s))
	})
}

// checkBlock tests a line against every block start, falling back to an
// indented code block at 4 or more columns of indent.
func checkBlock(ln line) checkResult {
	if ln.indent >= 4 {
		return checkedNew(newIndentedCode(ln))
	}
	return checkBlockKnownIndent(ln)
}

// checkBlockKnownIndent tests a line with indent below 4 against every
// block start. The dispatch order is fixed, it encodes block precedence.
func checkBlockKnownIndent(ln line) checkResult {
	switch {
	case ln.first == '#':
		return checkHeading(ln)
	case ln.first == '_':
		return checkThematicBreak(ln)
	case ln.first == '`' || ln.first == '~':
		return checkFencedCode(ln)
	case ln.first == '>':
		return checkedNew(newBlockQuote(ln))
	case ln.first == '*' || ln.first == '-':
		return checkListStarDash(ln)
	case ln.first == '+':
		return checkListPlus(ln)
	case ln.first >= '0' && ln.first <= '9':
		return checkListNumber(ln)
	}
	return checkedText(ln)
}

// driver runs the per-line block protocol. It owns at most one open block
// and the sequence of blocks finished before it. Containers embed a driver
// of their own for their content.
type driver struct {
	current  builder
	finished []builder
}

// newDriver creates a driver and feeds it its first line.
func newDriver(ln line) *driver {
	d := &driver{}
	if !ln.blank {
		d.apply(checkBlock(ln).intoLineResultParagraph(false))
	}
	return d
}

// newDriverKnownIndent is newDriver for a first line with indent below 4.
func newDriverKnownIndent(ln line) *driver {
	d := &driver{}
	d.apply(checkBlockKnownIndent(ln).intoLineResultParagraph(false))
	return d
}

// next feeds one line to the open block.
func (d *driver) next(ln line) {
	var res lineResult
	if ln.blank {
		res, _ = d.nextBlank(ln.indent)
	} else {
		res = d.nextLine(ln)
	}
	d.apply(res)
}

func (d *driver) nextLine(ln line) lineResult {
	switch b := d.current.(type) {
	case nil:
		return checkBlock(ln).intoLineResultParagraph(false)
	case *paragraph:
		return b.next(ln)
	case *indentedCode:
		return b.next(ln)
	case *fencedCode:
		return b.next(ln)
	case *table:
		return b.next(ln)
	case *blockQuote:
		return b.next(ln)
	case *list:
		return b.next(ln)
	}
	tracer().Errorf("line fed to finished block %T", d.current)
	return none()
}

// nextBlank handles a blank line. The second return reports whether the
// blank is a gap separating blocks, which decides list looseness.
func (d *driver) nextBlank(indent int) (lineResult, bool) {
	switch b := d.current.(type) {
	case nil:
		return none(), true
	case *paragraph, *table, *blockQuote:
		return doneSelf(), true
	case *indentedCode:
		b.pushBlank(indent)
	case *fencedCode:
		b.pushBlank(indent)
	case *list:
		b.nextBlank(indent)
	}
	return none(), false
}

// nextContinuation handles a line that no longer matches the container
// markers of an outer block. Open paragraphs accept it lazily, anything
// else closes.
func (d *driver) nextContinuation(ln line) lineResult {
	switch b := d.current.(type) {
	case *paragraph:
		return b.nextContinuation(ln)
	case *blockQuote:
		return b.content.nextContinuation(ln)
	case *list:
		if b.current != nil {
			return b.current.content.nextContinuation(ln)
		}
	}
	return checkBlockKnownIndent(ln).intoLineResultParagraph(true)
}

// nextIndentedContinuation is nextContinuation for lines indented 4 or
// more columns past the container marker.
func (d *driver) nextIndentedContinuation(ln line) lineResult {
	switch b := d.current.(type) {
	case *paragraph:
		b.nextIndentedContinuation(ln)
		return none()
	case *blockQuote:
		return b.content.nextIndentedContinuation(ln)
	case *list:
		if b.current != nil {
			return b.current.content.nextIndentedContinuation(ln)
		}
	}
	return doneSelfAndNew(newIndentedCode(ln))
}

func (d *driver) apply(res lineResult) {
	switch res.kind {
	case resultNone:
	case resultNew:
		d.current = res.blk
	case resultDoneSelf:
		d.closeCurrent()
	case resultDone:
		d.push(res.blk)
	case resultDoneSelfAndNew:
		d.closeCurrent()
		d.current = res.blk
	case resultDoneSelfAndOther:
		d.closeCurrent()
		d.push(res.blk)
	}
}

func (d *driver) push(b builder) {
	d.finished = append(d.finished, b)
}

func (d *driver) closeCurrent() {
	if d.current != nil {
		d.finished = append(d.finished, d.current)
		d.current = nil
	}
}

func (d *driver) isEmpty() bool {
	return d.current == nil && len(d.finished) == 0
}

func (d *driver) all() []builder {
	if d.current == nil {
		return d.finished
	}
	return append(d.finished[:len(d.finished):len(d.finished)], d.current)
}

// collectDefinitions harvests link reference definitions from all blocks,
// open or finished.
func (d *driver) collectDefinitions(defs *definitions) {
	for _, b := range d.all() {
		b.collectDefinitions(defs)
	}
}

// finish resolves all blocks into tree blocks.
func (d *driver) finish(defs *definitions) []tree.Block {
	var blocks []tree.Block
	for _, b := range d.all() {
		if block := b.finish(defs); block != nil {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
