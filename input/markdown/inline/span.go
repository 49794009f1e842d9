package inline

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/npillmayer/mdtree/tree"
)

func isPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

func isUnicodeSpace(r rune) bool {
	if r < 0x80 {
		return r == ' ' || r == '\t' || r == '\n'
	}
	return unicode.In(r, unicode.Zs)
}

func isUnicodePunct(r rune) bool {
	if r < 0x80 {
		return isPunct(byte(r))
	}
	return unicode.In(r, unicode.Punct)
}

// parseEscape handles a backslash. A backslash before ASCII punctuation
// escapes it, one before a newline is a hard line break.
func parseEscape(s string, i int) (token, int, int, bool) {
	if i+1 < len(s) {
		c := s[i+1]
		if isPunct(c) {
			return textTok{s[i+1 : i+2]}, i, i + 2, true
		}
		if c == '\n' {
			end := i + 2
			for end < len(s) && (s[end] == ' ' || s[end] == '\t') {
				end++
			}
			return inlineTok{tree.LineBreak{}}, i, end, true
		}
	}
	return nil, 0, 0, false
}

// parseBreak handles a newline: a hard break after two trailing spaces,
// a soft break otherwise. Surrounding whitespace is consumed.
func parseBreak(s string, i int) (token, int, int, bool) {
	start := i
	for start > 0 && (s[start-1] == ' ' || s[start-1] == '\t') {
		start--
	}
	end := i + 1
	for end < len(s) && (s[end] == ' ' || s[end] == '\t') {
		end++
	}
	if i >= 2 && s[i-1] == ' ' && s[i-2] == ' ' {
		return inlineTok{tree.LineBreak{}}, start, end, true
	}
	return inlineTok{tree.SoftBreak{}}, start, end, true
}

// parseCodeSpan handles a backtick run. A code span needs a closing run
// of exactly the same length; without one the run is literal text.
func parseCodeSpan(s string, i int) (token, int, int, bool) {
	start := i
	n := 1
	for i+n < len(s) && s[i+n] == '`' {
		n++
	}
	for end := i + n; end < len(s); {
		if s[end] != '`' {
			end++
			continue
		}
		estart := end
		for end < len(s) && s[end] == '`' {
			end++
		}
		if end-estart == n {
			// line endings count as spaces inside a code span
			text := strings.ReplaceAll(s[i+n:estart], "\n", " ")
			// strip one space from both ends so `` ` `` can quote a backtick
			if len(text) >= 2 && text[0] == ' ' && text[len(text)-1] == ' ' && strings.Trim(text, " ") != "" {
				text = text[1 : len(text)-1]
			}
			return inlineTok{tree.Code{Attr: tree.EmptyAttr(), Text: text}}, start, end, true
		}
	}
	// no closing run, the whole opening run is literal
	return textTok{s[i : i+n]}, start, i + n, true
}

// parseEntity handles an '&'. Numeric character references decode to a
// rune with U+FFFD standing in for anything invalid; named references
// must be known HTML entities.
func parseEntity(s string, i int) (token, int, int, bool) {
	start := i
	if i+1 < len(s) && s[i+1] == '#' {
		i += 2
		var r rune
		var end int
		if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
			i++
			j := i
			for j < len(s) && isHexDigit(s[j]) {
				j++
			}
			if j-i < 1 || j-i > 6 || j >= len(s) || s[j] != ';' {
				return nil, 0, 0, false
			}
			r64, _ := strconv.ParseInt(s[i:j], 16, 32)
			r = rune(r64)
			end = j + 1
		} else {
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if j-i < 1 || j-i > 7 || j >= len(s) || s[j] != ';' {
				return nil, 0, 0, false
			}
			v, _ := strconv.Atoi(s[i:j])
			r = rune(v)
			end = j + 1
		}
		if r == 0 || !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		return textTok{string(r)}, start, end, true
	}
	// longest known entity name is well below 64 bytes
	for j := i + 1; j < len(s) && j-i < 64; j++ {
		if s[j] == '&' {
			break
		}
		if s[j] == ';' {
			candidate := s[i : j+1]
			decoded := html.UnescapeString(candidate)
			// UnescapeString also decodes bare prefixes, turning an
			// unknown "&notanentity;" into "¬anentity;". Accept only
			// when the whole name is one entity, which is exactly when
			// the prefix form decodes to something else.
			if decoded != candidate && decoded != html.UnescapeString(s[i:j])+";" {
				return textTok{decoded}, start, j + 1, true
			}
			break
		}
	}
	return nil, 0, 0, false
}

func isHexDigit(c byte) bool {
	return 'A' <= c && c <= 'F' || 'a' <= c && c <= 'f' || '0' <= c && c <= '9'
}

// unescape decodes backslash escapes and entity references in link
// destinations and titles.
func unescape(s string) string {
	if !strings.ContainsAny(s, "\\&") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\\' && i+1 < len(s) && isPunct(s[i+1]):
			b.WriteByte(s[i+1])
			i += 2
		case s[i] == '&':
			if tok, _, end, ok := parseEntity(s, i); ok {
				b.WriteString(tok.(textTok).text)
				i = end
				continue
			}
			b.WriteByte(s[i])
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
