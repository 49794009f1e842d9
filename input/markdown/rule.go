package markdown

import (
	"github.com/npillmayer/mdtree/tree"
)

// thematicBreak is a finished thematic break.
type thematicBreak struct{}

// checkThematicBreak tests for a thematic break, assuming the line starts
// with '_'. Breaks made of '*' or '-' are recognized by the list checks,
// which own those markers.
func checkThematicBreak(ln line) checkResult {
	count := 1
	for _, c := range ln.rest() {
		switch c {
		case ' ', '\t':
		case '_':
			count++
		default:
			return checkedText(ln)
		}
	}
	if count < 3 {
		return checkedText(ln)
	}
	return checkedDone(thematicBreak{})
}

func (thematicBreak) collectDefinitions(defs *definitions) {}

func (thematicBreak) finish(defs *definitions) tree.Block {
	return tree.HorizontalRule{}
}
