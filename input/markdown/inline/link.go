package inline

import (
	"strings"

	"github.com/npillmayer/mdtree/tree"
)

func parseLinkOpen(s string, i int) (token, int, int, bool) {
	return &openTok{text: s[i : i+1], i: i + 1}, i, i + 1, true
}

func parseImageOpen(s string, i int) (token, int, int, bool) {
	if i+1 < len(s) && s[i+1] == '[' {
		return &openTok{text: s[i : i+2], i: i + 2}, i, i + 2, true
	}
	return nil, 0, 0, false
}

// parseLinkClose tries to complete the bracket pair opened at open when
// the ']' at i is reached. It handles inline links with destination and
// optional title, full reference links, and collapsed or shortcut
// references.
func (p *parser) parseLinkClose(s string, i int, open *openTok) (tree.Target, int, bool) {
	if i+1 < len(s) {
		switch s[i+1] {
		case '(':
			j := skipSpace(s, i+2)
			var dest, title string
			ok := true
			if j < len(s) && s[j] != ')' {
				dest, j, ok = parseLinkDest(s, j)
				if ok {
					j = skipSpace(s, j)
					if j < len(s) && s[j] != ')' {
						title, j, ok = parseLinkTitle(s, j)
						if ok {
							j = skipSpace(s, j)
						}
					}
				}
			}
			if ok && j < len(s) && s[j] == ')' {
				return tree.Target{URL: dest, Title: title}, j + 1, true
			}
		case '[':
			label, j, ok := parseLinkLabel(s, i+1)
			if !ok {
				break
			}
			if target, found := p.links.Resolve(label); found {
				return target, j, true
			}
			return tree.Target{}, 0, false
		}
	}
	// collapsed or shortcut reference
	end := i + 1
	if strings.HasPrefix(s[end:], "[]") {
		end += 2
	}
	if target, found := p.links.Resolve(s[open.i:i]); found {
		return target, end, true
	}
	return tree.Target{}, 0, false
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}

// parseLinkDest parses a link destination, either <...> enclosed or a
// bare run with balanced parentheses.
func parseLinkDest(s string, i int) (string, int, bool) {
	if i >= len(s) {
		return "", 0, false
	}
	if s[i] == '<' {
		for j := i + 1; ; j++ {
			if j >= len(s) || s[j] == '\n' || s[j] == '<' {
				return "", 0, false
			}
			if s[j] == '>' {
				return unescape(s[i+1 : j]), j + 1, true
			}
			if s[j] == '\\' {
				j++
			}
		}
	}
	depth := 0
	j := i
Loop:
	for ; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				break Loop
			}
			depth--
		case '\\':
			if j+1 < len(s) {
				j++
			}
		case ' ', '\t', '\n':
			break Loop
		}
	}
	return unescape(s[i:j]), j, true
}

// parseLinkTitle parses a link title in double quotes, single quotes or
// parentheses.
func parseLinkTitle(s string, i int) (string, int, bool) {
	if i < len(s) && (s[i] == '"' || s[i] == '\'' || s[i] == '(') {
		want := s[i]
		if want == '(' {
			want = ')'
		}
		for j := i + 1; j < len(s); j++ {
			if s[j] == want {
				return unescape(s[i+1 : j]), j + 1, true
			}
			if s[j] == '(' && want == ')' {
				break
			}
			if s[j] == '\\' && j+1 < len(s) {
				j++
			}
		}
	}
	return "", 0, false
}

// parseLinkLabel parses a reference label: up to 999 chars between
// brackets with at least one non-whitespace char.
func parseLinkLabel(s string, i int) (string, int, bool) {
	for j := i + 1; j < len(s); j++ {
		if s[j] == ']' {
			if j-(i+1) > 999 {
				break
			}
			if label := strings.Trim(s[i+1:j], " \t\n"); label != "" {
				return label, j + 1, true
			}
			break
		}
		if s[j] == '[' {
			break
		}
		if s[j] == '\\' && j+1 < len(s) {
			j++
		}
	}
	return "", 0, false
}
