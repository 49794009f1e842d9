package markdown

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/text/cases"

	"github.com/npillmayer/mdtree/tree"
)

// definitions is the link reference table of a document. Labels are
// matched case-insensitively with interior whitespace collapsed; the
// first definition for a label wins.
type definitions struct {
	table  *treemap.Map
	folder cases.Caser
}

func newDefinitions() *definitions {
	return &definitions{
		table:  treemap.NewWithStringComparator(),
		folder: cases.Fold(),
	}
}

// strip normalizes a label: surrounding whitespace removed, interior
// whitespace runs collapsed to a single space, case folded.
func (defs *definitions) strip(label string) string {
	var b strings.Builder
	space := false
	for _, c := range strings.TrimSpace(label) {
		switch c {
		case ' ', '\t', '\n':
			space = true
		default:
			if space {
				space = false
				b.WriteByte(' ')
			}
			b.WriteRune(c)
		}
	}
	return defs.folder.String(b.String())
}

// add records a definition unless the label is already taken.
func (defs *definitions) add(label, dest, title string) {
	key := defs.strip(label)
	if _, found := defs.table.Get(key); found {
		tracer().Debugf("duplicate link definition [%s] ignored", key)
		return
	}
	defs.table.Put(key, tree.Target{URL: dest, Title: title})
}

// Resolve looks up a link reference label.
func (defs *definitions) Resolve(label string) (tree.Target, bool) {
	value, found := defs.table.Get(defs.strip(label))
	if !found {
		return tree.Target{}, false
	}
	return value.(tree.Target), true
}
