package markdown

import (
	"strings"

	"github.com/npillmayer/mdtree/tree"

	"github.com/npillmayer/mdtree/input/markdown/inline"
)

// heading is a finished ATX heading. It is complete the moment its line is
// seen, only inline resolution is deferred.
type heading struct {
	level   int
	content string
}

// checkHeading tests for an ATX heading, assuming the line starts with '#'.
func checkHeading(ln line) checkResult {
	it := newIter(ln.rest())
	level := 1 + it.skipWhileEq('#')
	if level > 6 {
		return checkedText(ln)
	}
	if it.ended() {
		return checkedDone(&heading{level: level})
	}
	if !it.skipWhitespaceMinOne() {
		return checkedText(ln)
	}
	content := strings.TrimRight(it.restString(), " \t")
	// a trailing '#' run preceded by whitespace is decoration
	if stripped := strings.TrimRight(content, "#"); len(stripped) < len(content) {
		if stripped == "" || strings.HasSuffix(stripped, " ") || strings.HasSuffix(stripped, "\t") {
			content = strings.TrimRight(stripped, " \t")
		}
	}
	return checkedDone(&heading{level: level, content: content})
}

func (h *heading) collectDefinitions(defs *definitions) {}

func (h *heading) finish(defs *definitions) tree.Block {
	return tree.NewHeader(h.level, inline.Parse(h.content, defs))
}
