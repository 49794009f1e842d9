package markdown

import (
	"github.com/npillmayer/mdtree/tree"
)

// blockQuote is an open block quote. Content after the '>' marker runs
// through a driver of its own.
type blockQuote struct {
	content *driver
}

// quoteInterior strips the '>' marker and at most one following column of
// indent from the line.
func quoteInterior(ln line) line {
	inner := ln.restLine()
	if !inner.blank && inner.indent > 0 {
		inner.indent--
	}
	return inner
}

func newBlockQuote(ln line) *blockQuote {
	return &blockQuote{content: newDriver(quoteInterior(ln))}
}

func (b *blockQuote) next(ln line) lineResult {
	if ln.indent >= 4 {
		return b.content.nextIndentedContinuation(ln)
	}
	if ln.first == '>' {
		b.content.next(quoteInterior(ln))
		return none()
	}
	return b.content.nextContinuation(ln)
}

func (b *blockQuote) collectDefinitions(defs *definitions) {
	b.content.collectDefinitions(defs)
}

func (b *blockQuote) finish(defs *definitions) tree.Block {
	return tree.BlockQuote{Blocks: b.content.finish(defs)}
}
