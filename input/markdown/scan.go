package markdown

import (
	"strings"
	"unicode/utf8"
)

// line is a view of one input line with the leading indent stripped off.
// Tabs count towards the indent with a tab stop of 4, i.e. a tab advances
// to the next multiple of four columns.
type line struct {
	first  rune   // first non-whitespace char, undefined on blank lines
	indent int    // width of the stripped indent in columns
	total  int    // column of first, counted from the start of the physical line
	text   string // content starting at first
	blank  bool
}

// skipIndent strips leading whitespace from text, counting columns starting
// at indent.
func skipIndent(text string, indent int) line {
	total := indent
	for i, c := range text {
		switch c {
		case ' ':
			total++
		case '\t':
			total += 4 - total%4
		default:
			return line{first: c, indent: total - indent, total: total, text: text[i:]}
		}
	}
	return line{indent: total - indent, blank: true}
}

// rest returns the content with the first char removed.
func (ln line) rest() string {
	return ln.text[utf8.RuneLen(ln.first):]
}

// restLine strips the indent following the first char, continuing the
// column count behind it.
func (ln line) restLine() line {
	return skipIndent(ln.rest(), ln.total+1)
}

// moveIndent transfers width columns of the indent to the consuming block.
func (ln *line) moveIndent(width int) {
	ln.indent -= width
}

// moveIndentCapped is moveIndent clamped at zero.
func (ln *line) moveIndentCapped(width int) {
	ln.indent -= width
	if ln.indent < 0 {
		ln.indent = 0
	}
}

// full reconstructs the line including the remaining indent.
func (ln line) full() string {
	if ln.indent == 0 {
		return ln.text
	}
	return strings.Repeat(" ", ln.indent) + ln.text
}

func (ln line) pushFull(b *strings.Builder) {
	for i := 0; i < ln.indent; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(ln.text)
}

// iter is a forward scanner over a line fragment.
type iter struct {
	text string
	pos  int
}

func newIter(text string) *iter {
	return &iter{text: text}
}

func (it *iter) peek() (rune, bool) {
	if it.pos >= len(it.text) {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(it.text[it.pos:])
	return c, true
}

func (it *iter) next() (rune, bool) {
	if it.pos >= len(it.text) {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(it.text[it.pos:])
	it.pos += size
	return c, true
}

func (it *iter) nextIfEq(c rune) bool {
	if cur, ok := it.peek(); ok && cur == c {
		it.pos += utf8.RuneLen(c)
		return true
	}
	return false
}

// skipWhileEq skips a run of c and returns its length.
func (it *iter) skipWhileEq(c rune) int {
	count := 0
	for it.nextIfEq(c) {
		count++
	}
	return count
}

func (it *iter) skipWhileEqMinOne(c rune) bool {
	return it.skipWhileEq(c) > 0
}

func (it *iter) skipWhitespace() {
	for {
		c, ok := it.peek()
		if !ok || (c != ' ' && c != '\t') {
			return
		}
		it.pos++
	}
}

func (it *iter) skipWhitespaceMinOne() bool {
	start := it.pos
	it.skipWhitespace()
	return it.pos > start
}

func (it *iter) skipWhitespaceNewline() {
	for {
		c, ok := it.peek()
		if !ok || (c != ' ' && c != '\t' && c != '\n') {
			return
		}
		it.pos++
	}
}

func (it *iter) ended() bool {
	return it.pos >= len(it.text)
}

func (it *iter) anyEq(c rune) bool {
	return strings.ContainsRune(it.text[it.pos:], c)
}

// restString returns the unconsumed remainder.
func (it *iter) restString() string {
	return it.text[it.pos:]
}

func (it *iter) restTrimmed() string {
	return strings.TrimRight(it.text[it.pos:], " \t")
}

// untilUnescaped consumes up to the next occurrence of c that is not
// backslash-escaped and returns the text before it. Reports failure when
// the fragment ends first.
func (it *iter) untilUnescaped(c rune) (string, bool) {
	return it.untilUnescapedExcept(c, -1)
}

// untilUnescapedExcept is untilUnescaped, additionally failing on an
// unescaped illegal char.
func (it *iter) untilUnescapedExcept(c, illegal rune) (string, bool) {
	start := it.pos
	escape := false
	for {
		pos := it.pos
		cur, ok := it.next()
		if !ok {
			return "", false
		}
		switch {
		case !escape && cur == c:
			return it.text[start:pos], true
		case !escape && cur == illegal:
			return "", false
		default:
			escape = cur == '\\' && !escape
		}
	}
}

// linkDestination consumes a link destination, either <...> enclosed or a
// run without whitespace and control chars.
func (it *iter) linkDestination() (string, bool) {
	c, ok := it.next()
	if !ok {
		return "", false
	}
	if c == '<' {
		dest, ok := it.untilUnescapedExcept('>', '\n')
		return dest, ok
	}
	start := it.pos - utf8.RuneLen(c)
	for {
		cur, ok := it.peek()
		if !ok {
			return it.text[start:], true
		}
		if cur == ' ' || cur == '\t' || cur == '\n' {
			return it.text[start:it.pos], true
		}
		if cur < 0x20 || cur == 0x7f {
			return "", false
		}
		it.next()
	}
}
