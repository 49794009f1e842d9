package markdown

import (
	"strings"

	"github.com/npillmayer/mdtree/tree"
)

// Reader parses GitHub Flavoured Markdown into a document tree.
//
// Parsing runs in two phases. The block phase feeds the document to a
// driver line by line and builds the block structure, keeping inline
// content as raw text. Once every block is known, link reference
// definitions are collected from the paragraph starts, then all raw text
// is resolved into inline elements.
type Reader struct{}

// Read never fails; any input is some document.
func (Reader) Read(source string) (*tree.Document, error) {
	d := &driver{}
	count := 0
	for text := source; text != ""; {
		var raw string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			raw, text = text[:i], text[i+1:]
		} else {
			raw, text = text, ""
		}
		d.next(skipIndent(strings.TrimSuffix(raw, "\r"), 0))
		count++
	}
	defs := newDefinitions()
	d.collectDefinitions(defs)
	blocks := d.finish(defs)
	tracer().Debugf("markdown reader: %d lines, %d top-level blocks", count, len(blocks))
	return &tree.Document{Meta: tree.Meta{}, Blocks: blocks}, nil
}
