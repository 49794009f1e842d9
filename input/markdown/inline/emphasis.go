package inline

import (
	"unicode/utf8"

	"github.com/npillmayer/mdtree/tree"
)

// parseEmphRun records a delimiter run of '*', '_' or '~' together with
// its flanking classification. Tilde runs longer than two are literal.
func parseEmphRun(s string, i int) (token, int, int, bool) {
	c := s[i]
	j := i + 1
	for j < len(s) && s[j] == c {
		j++
	}
	if c == '~' && j-i > 2 {
		return textTok{s[i:j]}, i, j, true
	}

	var before, after rune
	if i == 0 {
		before = ' '
	} else {
		before, _ = utf8.DecodeLastRuneInString(s[:i])
	}
	if j >= len(s) {
		after = ' '
	} else {
		after, _ = utf8.DecodeRuneInString(s[j:])
	}

	// left-flanking: not followed by whitespace, and not followed by
	// punctuation unless preceded by whitespace or punctuation; line
	// boundaries count as whitespace
	leftFlank := !isUnicodeSpace(after) &&
		(!isUnicodePunct(after) || isUnicodeSpace(before) || isUnicodePunct(before))

	// right-flanking: the mirror image
	rightFlank := !isUnicodeSpace(before) &&
		(!isUnicodePunct(before) || isUnicodeSpace(after) || isUnicodePunct(after))

	var canOpen, canClose bool
	if c == '_' {
		// underscores must not open or close inside a word
		canOpen = leftFlank && (!rightFlank || isUnicodePunct(before))
		canClose = rightFlank && (!leftFlank || isUnicodePunct(after))
	} else {
		canOpen = leftFlank
		canClose = rightFlank
	}

	return &emphTok{text: s[i:j], canOpen: canOpen, canClose: canClose, n: j - i}, i, j, true
}

// emphasis runs the delimiter stack algorithm over src, appending the
// resolved tokens to dst. Closers bind to the nearest compatible opener
// of the same char; a run that matched partially keeps trying with its
// remaining delimiters.
func (p *parser) emphasis(dst, src []token) []token {
	var stack [3][]*emphTok
	stackOf := func(c byte) int {
		switch c {
		case '*':
			return 1
		case '~':
			return 2
		}
		return 0
	}

	// openers whose position got cut off by an earlier match are dead
	trimStack := func() {
		for i := range stack {
			stk := &stack[i]
			for len(*stk) > 0 && (*stk)[len(*stk)-1].i >= len(dst) {
				*stk = (*stk)[:len(*stk)-1]
			}
		}
	}

	for i := 0; i < len(src); i++ {
		open, ok := src[i].(*openTok)
		if ok {
			// unused link open marker reverts to plain text
			dst = append(dst, textTok{open.text})
			continue
		}
		t, ok := src[i].(*emphTok)
		if !ok {
			dst = append(dst, src[i])
			continue
		}
		if t.canClose {
			stk := &stack[stackOf(t.text[0])]
		Loop:
			for t.text != "" {
				for k := len(*stk) - 1; k >= 0; k-- {
					start := (*stk)[k]
					// runs where one side can both open and close must not sum
					// to a multiple of three, unless both are multiples of three
					if (t.canOpen && t.canClose || start.canOpen && start.canClose) &&
						(t.n+start.n)%3 == 0 && (t.n%3 != 0 || start.n%3 != 0) {
						continue
					}
					ch := t.text[0]
					d := 1
					if len(t.text) >= 2 && len(start.text) >= 2 {
						d = 2
					}
					inner := flatten(dst[start.i+1:])
					start.text = start.text[:len(start.text)-d]
					t.text = t.text[d:]
					if start.text == "" {
						dst = dst[:start.i]
					} else {
						dst = dst[:start.i+1]
					}
					trimStack()
					var inl tree.Inline
					switch {
					case ch == '~':
						inl = tree.Strikeout{Inlines: inner}
					case d == 2:
						inl = tree.Strong{Inlines: inner}
					default:
						inl = tree.Emph{Inlines: inner}
					}
					dst = append(dst, inlineTok{inl})
					continue Loop
				}
				break
			}
		}
		if t.text != "" {
			if t.canOpen {
				t.i = len(dst)
				dst = append(dst, t)
				stk := &stack[stackOf(t.text[0])]
				*stk = append(*stk, t)
			} else {
				dst = append(dst, textTok{t.text})
			}
		}
	}
	return dst
}
