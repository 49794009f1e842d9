package markdown

import (
	"github.com/npillmayer/mdtree/tree"
)

// list is an open bullet or ordered list. Only the last item can still
// consume lines.
type list struct {
	ordered bool
	marker  rune // bullet char of an unordered list
	start   int  // first number of an ordered list
	closing rune // '.' or ')' of an ordered list
	items   []*listItem
	current *listItem
	loose   bool
}

// listItem is one item of a list. Content past the marker width runs
// through a driver of its own.
type listItem struct {
	content *driver
	width   int // columns taken by the marker and its trailing indent
	indent  int // columns of indent before the marker
	gap     bool
	loose   bool
}

func newBulletList(marker rune, item *listItem) *list {
	return &list{marker: marker, current: item}
}

func newOrderedList(start int, closing rune, item *listItem) *list {
	return &list{ordered: true, start: start, closing: closing, current: item}
}

func newEmptyItem(width, indent int) *listItem {
	return &listItem{content: &driver{}, width: width, indent: indent}
}

func newListItem(width, indent int, content line) *listItem {
	return &listItem{content: newDriverKnownIndent(content), width: width, indent: indent}
}

// newCodeItem starts an item whose content is indented 5 or more columns
// past the marker: one column belongs to the item, the rest is code.
func newCodeItem(width, indent int, content line) *listItem {
	content.moveIndent(1)
	return &listItem{
		content: &driver{current: newIndentedCode(content)},
		width:   width,
		indent:  indent,
	}
}

// unorderedItem builds an item for a bullet marker with known rest of the
// line, or nil when the content starts in the marker column.
func unorderedItem(ln, rest line) *listItem {
	switch {
	case rest.indent == 0:
		return nil
	case rest.indent <= 4:
		return newListItem(1+rest.indent, ln.indent, rest)
	default:
		return newCodeItem(2, ln.indent, rest)
	}
}

// isThematicPair reports whether marker line plus rest form a thematic
// break, i.e. at least three of the same marker char with nothing but
// whitespace between.
func isThematicPair(ln, rest line) bool {
	if ln.first != rest.first {
		return false
	}
	third := false
	for _, c := range rest.rest() {
		switch c {
		case ' ', '\t':
		case rest.first:
			third = true
		default:
			return false
		}
	}
	return third
}

// checkListStarDash tests for a bullet list item or a thematic break,
// assuming the line starts with '*' or '-'.
func checkListStarDash(ln line) checkResult {
	rest := ln.restLine()
	if rest.blank {
		return checkedNew(newBulletList(ln.first, newEmptyItem(2, ln.indent)))
	}
	return checkStarDashKnown(ln, rest)
}

// checkListStarParagraph is checkListStarDash inside a paragraph, where a
// marker without content cannot interrupt.
func checkListStarParagraph(ln line) checkResult {
	rest := ln.restLine()
	if rest.blank {
		return checkedText(ln)
	}
	return checkStarDashKnown(ln, rest)
}

func checkStarDashKnown(ln, rest line) checkResult {
	if isThematicPair(ln, rest) {
		return checkedDone(thematicBreak{})
	}
	item := unorderedItem(ln, rest)
	if item == nil {
		return checkedText(ln)
	}
	return checkedNew(newBulletList(ln.first, item))
}

// checkOrSetext distinguishes a '-' line interrupting a paragraph into a
// list or thematic break from one underlining it as a setext heading.
type checkOrSetext struct {
	setext bool
	check  checkResult
}

// checkListDashParagraph tests a '-' line inside a paragraph.
func checkListDashParagraph(ln line) checkOrSetext {
	rest := ln.restLine()
	if rest.blank {
		return checkOrSetext{setext: true}
	}
	if rest.indent == 0 {
		return dashThematicOrSetext(ln, rest)
	}
	if isThematicPair(ln, rest) {
		return checkOrSetext{check: checkedDone(thematicBreak{})}
	}
	var item *listItem
	if rest.indent < 5 {
		item = newListItem(1+rest.indent, ln.indent, rest)
	} else {
		item = newCodeItem(2, ln.indent, rest)
	}
	return checkOrSetext{check: checkedNew(newBulletList('-', item))}
}

// dashThematicOrSetext classifies an unbroken '-' run: with interior
// whitespace it is a thematic break, without it a setext underline.
func dashThematicOrSetext(ln, rest line) checkOrSetext {
	space, thematic := false, false
	for _, c := range rest.text {
		switch c {
		case ' ', '\t':
			space = true
		case '-':
			if space {
				thematic = true
			}
		default:
			return checkOrSetext{check: checkedText(ln)}
		}
	}
	if thematic {
		return checkOrSetext{check: checkedDone(thematicBreak{})}
	}
	return checkOrSetext{setext: true}
}

// checkListPlus tests for a bullet list item, assuming the line starts
// with '+'. A '+' run is never a thematic break.
func checkListPlus(ln line) checkResult {
	rest := ln.restLine()
	if rest.blank {
		return checkedNew(newBulletList('+', newEmptyItem(2, ln.indent)))
	}
	return plusKnown(ln, rest)
}

func checkListPlusParagraph(ln line) checkResult {
	rest := ln.restLine()
	if rest.blank {
		return checkedText(ln)
	}
	return plusKnown(ln, rest)
}

func plusKnown(ln, rest line) checkResult {
	item := unorderedItem(ln, rest)
	if item == nil {
		return checkedText(ln)
	}
	return checkedNew(newBulletList('+', item))
}

// orderedMarker is a scanned ordered list marker.
type orderedMarker struct {
	start   int
	width   int // digits of the number
	closing rune
	rest    line
	blank   bool
}

// scanOrderedMarker parses a number of at most nine digits followed by
// '.' or ')', assuming the line starts with a digit.
func scanOrderedMarker(ln line) (orderedMarker, bool) {
	it := newIter(ln.rest())
	start := int(ln.first - '0')
	width := 1
	for {
		c, ok := it.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		width++
		if width > 9 {
			return orderedMarker{}, false
		}
		start = 10*start + int(c-'0')
		it.next()
	}
	closing, ok := it.peek()
	if !ok || (closing != '.' && closing != ')') {
		return orderedMarker{}, false
	}
	it.next()
	rest := skipIndent(it.restString(), ln.total+width+1)
	return orderedMarker{start: start, width: width, closing: closing, rest: rest, blank: rest.blank}, true
}

// checkListNumber tests for an ordered list item, assuming the line
// starts with a digit.
func checkListNumber(ln line) checkResult {
	m, ok := scanOrderedMarker(ln)
	if !ok {
		return checkedText(ln)
	}
	if m.blank {
		return checkedNew(newOrderedList(m.start, m.closing, newEmptyItem(m.width+2, ln.indent)))
	}
	item := orderedItem(ln, m)
	if item == nil {
		return checkedText(ln)
	}
	return checkedNew(newOrderedList(m.start, m.closing, item))
}

func orderedItem(ln line, m orderedMarker) *listItem {
	switch {
	case m.rest.indent == 0:
		return nil
	case m.rest.indent <= 4:
		return newListItem(m.width+1+m.rest.indent, ln.indent, m.rest)
	default:
		return newCodeItem(m.width+2, ln.indent, m.rest)
	}
}

// checkListNumberParagraph tests an ordered marker inside a paragraph.
// Only a '1.' or '1)' marker with content can interrupt.
func checkListNumberParagraph(ln line) checkResult {
	it := newIter(ln.rest())
	closing, ok := it.peek()
	if !ok || (closing != '.' && closing != ')') {
		return checkedText(ln)
	}
	it.next()
	rest := skipIndent(it.restString(), ln.total+2)
	if rest.blank || rest.indent == 0 {
		return checkedText(ln)
	}
	var item *listItem
	if rest.indent <= 4 {
		item = newListItem(2+rest.indent, ln.indent, rest)
	} else {
		item = newCodeItem(3, ln.indent, rest)
	}
	return checkedNew(newOrderedList(1, closing, item))
}

func (l *list) next(ln line) lineResult {
	if cur := l.current; cur != nil && ln.indent >= cur.indent+cur.width {
		ln.moveIndent(cur.indent + cur.width)
		cur.nextLine(ln)
		return none()
	}
	if ln.indent > 3 {
		if l.current != nil {
			return l.current.content.nextIndentedContinuation(ln)
		}
		return doneSelfAndNew(newIndentedCode(ln))
	}
	res, text, matched := l.checkMatching(ln)
	if matched {
		return res
	}
	if l.current != nil {
		return l.current.content.nextContinuation(text)
	}
	return checkBlockKnownIndent(text).intoLineResultParagraph(true)
}

// checkMatching tests whether the line starts another item of the same
// list family. A mismatched ordered closing or a thematic break ends the
// list; anything else falls through as text.
func (l *list) checkMatching(ln line) (lineResult, line, bool) {
	if l.ordered {
		if ln.first < '0' || ln.first > '9' {
			return none(), ln, false
		}
		m, ok := scanOrderedMarker(ln)
		if !ok {
			return none(), ln, false
		}
		var item *listItem
		if m.blank {
			item = newEmptyItem(m.width+2, ln.indent)
		} else if item = orderedItem(ln, m); item == nil {
			return none(), ln, false
		}
		if m.closing != l.closing {
			return doneSelfAndNew(newOrderedList(m.start, m.closing, item)), ln, true
		}
		l.addItem(item)
		return none(), ln, true
	}
	if ln.first != l.marker {
		return none(), ln, false
	}
	rest := ln.restLine()
	if rest.blank {
		l.addItem(newEmptyItem(2, ln.indent))
		return none(), ln, true
	}
	if l.marker != '+' && isThematicPair(ln, rest) {
		return doneSelfAndOther(thematicBreak{}), ln, true
	}
	item := unorderedItem(ln, rest)
	if item == nil {
		return none(), ln, false
	}
	l.addItem(item)
	return none(), ln, true
}

func (l *list) addItem(item *listItem) {
	old := l.current
	l.current = item
	if !l.loose && (old == nil || old.loose || old.endsWithGap()) {
		l.loose = true
	}
	if old != nil {
		l.items = append(l.items, old)
	}
}

func (l *list) nextBlank(indent int) {
	if l.current != nil && l.current.nextBlank(indent) {
		l.items = append(l.items, l.current)
		l.current = nil
	}
}

func (l *list) endsWithGap() bool {
	return l.current == nil || l.current.endsWithGap()
}

func (l *list) collectDefinitions(defs *definitions) {
	for _, item := range l.items {
		item.content.collectDefinitions(defs)
	}
	if l.current != nil {
		l.current.content.collectDefinitions(defs)
	}
}

func (l *list) finish(defs *definitions) tree.Block {
	if l.current != nil && l.current.loose {
		l.loose = true
	}
	items := l.items
	if l.current != nil {
		items = append(items, l.current)
	}
	done := make([][]tree.Block, 0, len(items))
	for _, item := range items {
		done = append(done, item.finish(l.loose, defs))
	}
	if l.ordered {
		return tree.OrderedList{Attr: tree.NewListAttributes(l.start, l.closing), Items: done}
	}
	return tree.BulletList{Items: done}
}

func (it *listItem) nextLine(ln line) {
	res := it.content.nextLine(ln)
	if !it.loose {
		if (res.isDoneOrNew() && it.gap) || (res.closesCurrent() && innerListEndsWithGap(it.content.current)) {
			it.loose = true
		}
	}
	it.gap = false
	it.content.apply(res)
}

// nextBlank feeds a blank line to the item content. It reports true when
// the item is still empty, in which case the list closes it.
func (it *listItem) nextBlank(indent int) bool {
	if it.content.isEmpty() {
		return true
	}
	indent -= it.indent + it.width
	if indent < 0 {
		indent = 0
	}
	res, gap := it.content.nextBlank(indent)
	it.gap = gap
	it.content.apply(res)
	return false
}

func (it *listItem) endsWithGap() bool {
	if it.gap {
		return true
	}
	return innerListEndsWithGap(it.content.current)
}

func innerListEndsWithGap(b builder) bool {
	inner, ok := b.(*list)
	return ok && inner.endsWithGap()
}

// finish resolves the item content. In a tight list paragraphs shed their
// wrapper and become plain inline runs.
func (it *listItem) finish(loose bool, defs *definitions) []tree.Block {
	blocks := it.content.finish(defs)
	if loose {
		return blocks
	}
	for i, b := range blocks {
		if p, ok := b.(tree.Para); ok {
			blocks[i] = tree.Plain{Inlines: p.Inlines}
		}
	}
	return blocks
}
