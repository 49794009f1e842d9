package inline

import (
	"strings"

	"github.com/npillmayer/mdtree/tree"
)

// Resolver resolves link reference labels. Labels are matched
// case-insensitively with interior whitespace collapsed; the resolver is
// expected to normalize.
type Resolver interface {
	Resolve(label string) (tree.Target, bool)
}

// token is an intermediate scan result. Literal text, finished inlines
// and unresolved delimiter potentials travel through the same list until
// the delimiter pass settles everything.
type token interface {
	tok()
}

// textTok is literal text with escapes and entities already decoded.
type textTok struct {
	text string
}

// inlineTok is a finished inline element.
type inlineTok struct {
	inl tree.Inline
}

// openTok marks a '[' or '![' whose closing bracket is still pending.
type openTok struct {
	text string
	i    int // byte offset just past the bracket
}

// emphTok is an emphasis delimiter run.
type emphTok struct {
	text     string
	canOpen  bool
	canClose bool
	i        int // position in the output list during the delimiter pass
	n        int // length of the original run
}

func (textTok) tok()   {}
func (inlineTok) tok() {}
func (*openTok) tok()  {}
func (*emphTok) tok()  {}

type parser struct {
	s       string
	emitted int // s[:emitted] is already tokenized
	list    []token
	links   Resolver
}

// Parse resolves a raw text fragment into inline elements.
func Parse(text string, links Resolver) []tree.Inline {
	s := strings.Trim(text, " \t")
	if s == "" {
		return nil
	}
	p := &parser{s: s, links: links}
	p.scan()
	return flatten(p.emphasis(nil, p.list))
}

func (p *parser) emit(i int) {
	if p.emitted < i {
		p.list = append(p.list, textTok{p.s[p.emitted:i]})
		p.emitted = i
	}
}

func (p *parser) skip(i int) {
	p.emitted = i
}

// scan tokenizes the fragment. Bracket pairs resolve into links the
// moment the closing bracket is seen; everything else waits for the
// delimiter pass.
func (p *parser) scan() {
	s := p.s
	var opens []int // indexes of pending openTok entries in p.list
	lastLinkOpen := 0
	i := 0
	for i < len(s) {
		var tok token
		var start, end int
		ok := false
		switch s[i] {
		case '\\':
			tok, start, end, ok = parseEscape(s, i)
		case '`':
			tok, start, end, ok = parseCodeSpan(s, i)
		case '&':
			tok, start, end, ok = parseEntity(s, i)
		case '\n':
			tok, start, end, ok = parseBreak(s, i)
		case '[':
			tok, start, end, ok = parseLinkOpen(s, i)
		case '!':
			tok, start, end, ok = parseImageOpen(s, i)
		case '*', '_', '~':
			tok, start, end, ok = parseEmphRun(s, i)
		}
		if ok {
			p.emit(start)
			if _, isOpen := tok.(*openTok); isOpen {
				opens = append(opens, len(p.list))
			}
			p.list = append(p.list, tok)
			i = end
			p.skip(i)
			continue
		}
		if s[i] == ']' && len(opens) > 0 {
			oi := opens[len(opens)-1]
			open := p.list[oi].(*openTok)
			opens = opens[:len(opens)-1]
			if open.text[0] == '!' || lastLinkOpen <= open.i {
				if target, end, closed := p.parseLinkClose(s, i, open); closed {
					p.emit(i)
					inner := flatten(p.emphasis(nil, p.list[oi+1:]))
					var inl tree.Inline
					if open.text[0] == '!' {
						inl = tree.Image{Attr: tree.EmptyAttr(), Inlines: inner, Target: target}
					} else {
						inl = tree.Link{Attr: tree.EmptyAttr(), Inlines: inner, Target: target}
					}
					p.list = append(p.list[:oi], inlineTok{inl})
					p.skip(end)
					i = end
					if open.text[0] == '[' {
						// no links inside links
						lastLinkOpen = open.i
					}
					continue
				}
			}
		}
		i++
	}
	p.emit(len(s))
}

// flatten converts resolved tokens into inline elements. Unmatched
// delimiters and brackets fall back to literal text; whitespace runs
// become Space elements and adjacent strings merge.
func flatten(tokens []token) []tree.Inline {
	var result []tree.Inline
	appendStr := func(text string) {
		if text == "" {
			return
		}
		if len(result) > 0 {
			if prev, ok := result[len(result)-1].(tree.Str); ok {
				result[len(result)-1] = tree.Str{Text: prev.Text + text}
				return
			}
		}
		result = append(result, tree.Str{Text: text})
	}
	appendText := func(text string) {
		for text != "" {
			i := strings.IndexAny(text, " \t")
			if i < 0 {
				appendStr(text)
				return
			}
			appendStr(text[:i])
			for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
				i++
			}
			if len(result) == 0 || !isSpace(result[len(result)-1]) {
				result = append(result, tree.Space{})
			}
			text = text[i:]
		}
	}
	for _, tok := range tokens {
		switch t := tok.(type) {
		case textTok:
			appendText(t.text)
		case inlineTok:
			result = append(result, t.inl)
		case *openTok:
			appendText(t.text)
		case *emphTok:
			appendText(t.text)
		}
	}
	return result
}

func isSpace(inl tree.Inline) bool {
	switch inl.(type) {
	case tree.Space, tree.SoftBreak, tree.LineBreak:
		return true
	}
	return false
}
