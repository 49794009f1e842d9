package inline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/mdtree/tree"
)

// refs is a test resolver with pre-normalized labels.
type refs map[string]tree.Target

func (r refs) Resolve(label string) (tree.Target, bool) {
	target, ok := r[label]
	return target, ok
}

func TestPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("hello  world", refs{})
	expected := []tree.Inline{tree.Str{Text: "hello"}, tree.Space{}, tree.Str{Text: "world"}}
	assert.Equal(t, expected, inlines)
	assert.Nil(t, Parse("   ", refs{}))
}

func TestEmphasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("*foo*", refs{})
	assert.Equal(t, []tree.Inline{tree.Emph{Inlines: []tree.Inline{tree.Str{Text: "foo"}}}}, inlines)
	inlines = Parse("**foo**", refs{})
	assert.Equal(t, []tree.Inline{tree.Strong{Inlines: []tree.Inline{tree.Str{Text: "foo"}}}}, inlines)
	inlines = Parse("_foo_", refs{})
	assert.Equal(t, []tree.Inline{tree.Emph{Inlines: []tree.Inline{tree.Str{Text: "foo"}}}}, inlines)
}

func TestEmphasisMultiplesOfThree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	// the inner single '*' may not pair with the '**' opener
	inlines := Parse("**foo*bar**", refs{})
	expected := []tree.Inline{tree.Strong{Inlines: []tree.Inline{tree.Str{Text: "foo*bar"}}}}
	assert.Equal(t, expected, inlines)
}

func TestEmphasisIntrawordUnderscore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("foo_bar_", refs{})
	assert.Equal(t, []tree.Inline{tree.Str{Text: "foo_bar_"}}, inlines)
	// '*' has no intraword restriction
	inlines = Parse("foo*bar*", refs{})
	expected := []tree.Inline{
		tree.Str{Text: "foo"},
		tree.Emph{Inlines: []tree.Inline{tree.Str{Text: "bar"}}},
	}
	assert.Equal(t, expected, inlines)
}

func TestEmphasisUnmatched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("*foo", refs{})
	assert.Equal(t, []tree.Inline{tree.Str{Text: "*foo"}}, inlines)
}

func TestStrikeout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("~~foo~~", refs{})
	assert.Equal(t, []tree.Inline{tree.Strikeout{Inlines: []tree.Inline{tree.Str{Text: "foo"}}}}, inlines)
	// runs longer than two stay literal
	inlines = Parse("~~~foo~~~", refs{})
	assert.Equal(t, []tree.Inline{tree.Str{Text: "~~~foo~~~"}}, inlines)
}

func TestCodeSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("`code`", refs{})
	assert.Equal(t, []tree.Inline{tree.Code{Attr: tree.EmptyAttr(), Text: "code"}}, inlines)
	// the outer run matches only an equal run, one wrapping space strips
	inlines = Parse("`` foo ` bar ``", refs{})
	assert.Equal(t, []tree.Inline{tree.Code{Attr: tree.EmptyAttr(), Text: "foo ` bar"}}, inlines)
}

func TestCodeSpanUnmatched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("`foo", refs{})
	assert.Equal(t, []tree.Inline{tree.Str{Text: "`foo"}}, inlines)
}

func TestBackslashEscape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse(`\*not emph\*`, refs{})
	expected := []tree.Inline{tree.Str{Text: "*not"}, tree.Space{}, tree.Str{Text: "emph*"}}
	assert.Equal(t, expected, inlines)
	// a backslash before a non-punctuation char is literal
	inlines = Parse(`\a`, refs{})
	assert.Equal(t, []tree.Inline{tree.Str{Text: `\a`}}, inlines)
}

func TestEntities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("a &amp; b", refs{})
	expected := []tree.Inline{
		tree.Str{Text: "a"}, tree.Space{}, tree.Str{Text: "&"}, tree.Space{}, tree.Str{Text: "b"},
	}
	assert.Equal(t, expected, inlines)
	assert.Equal(t, []tree.Inline{tree.Str{Text: "A"}}, Parse("&#65;", refs{}))
	assert.Equal(t, []tree.Inline{tree.Str{Text: "A"}}, Parse("&#x41;", refs{}))
	// character zero decodes to the replacement char
	assert.Equal(t, []tree.Inline{tree.Str{Text: "�"}}, Parse("&#0;", refs{}))
	// not an entity
	assert.Equal(t, []tree.Inline{tree.Str{Text: "&notanentity;"}}, Parse("&notanentity;", refs{}))
}

func TestEntityPrefixStaysLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	// &not and &copy are entities even without a semicolon, but an
	// unknown name starting with one must not decode partially
	assert.Equal(t, []tree.Inline{tree.Str{Text: "&copyleft;"}}, Parse("&copyleft;", refs{}))
	assert.Equal(t, []tree.Inline{tree.Str{Text: "&notanentity;"}}, Parse("&notanentity;", refs{}))
	// full references sharing such a prefix still decode
	assert.Equal(t, []tree.Inline{tree.Str{Text: "¬"}}, Parse("&not;", refs{}))
	assert.Equal(t, []tree.Inline{tree.Str{Text: "∉"}}, Parse("&notin;", refs{}))
}

func TestBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("foo\nbar", refs{})
	assert.Equal(t, []tree.Inline{tree.Str{Text: "foo"}, tree.SoftBreak{}, tree.Str{Text: "bar"}}, inlines)
	inlines = Parse("foo  \nbar", refs{})
	assert.Equal(t, []tree.Inline{tree.Str{Text: "foo"}, tree.LineBreak{}, tree.Str{Text: "bar"}}, inlines)
	inlines = Parse("foo\\\nbar", refs{})
	assert.Equal(t, []tree.Inline{tree.Str{Text: "foo"}, tree.LineBreak{}, tree.Str{Text: "bar"}}, inlines)
}

func TestInlineLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("[text](/url)", refs{})
	link := tree.Link{
		Attr:    tree.EmptyAttr(),
		Inlines: []tree.Inline{tree.Str{Text: "text"}},
		Target:  tree.Target{URL: "/url"},
	}
	assert.Equal(t, []tree.Inline{link}, inlines)
	//
	inlines = Parse(`[text](/url "title")`, refs{})
	link.Target.Title = "title"
	assert.Equal(t, []tree.Inline{link}, inlines)
}

func TestReferenceLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	links := refs{"label": {URL: "/url", Title: "t"}}
	link := tree.Link{
		Attr:    tree.EmptyAttr(),
		Inlines: []tree.Inline{tree.Str{Text: "text"}},
		Target:  tree.Target{URL: "/url", Title: "t"},
	}
	assert.Equal(t, []tree.Inline{link}, Parse("[text][label]", links))
	//
	shortcut := link
	shortcut.Inlines = []tree.Inline{tree.Str{Text: "label"}}
	assert.Equal(t, []tree.Inline{shortcut}, Parse("[label]", links))
	assert.Equal(t, []tree.Inline{shortcut}, Parse("[label][]", links))
	//
	// unresolved references stay literal
	assert.Equal(t, []tree.Inline{tree.Str{Text: "[nope]"}}, Parse("[nope]", links))
}

func TestImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("![alt](/img.png)", refs{})
	image := tree.Image{
		Attr:    tree.EmptyAttr(),
		Inlines: []tree.Inline{tree.Str{Text: "alt"}},
		Target:  tree.Target{URL: "/img.png"},
	}
	assert.Equal(t, []tree.Inline{image}, inlines)
}

func TestNoLinkInsideLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("[a [b](/inner)](/outer)", refs{})
	inner := tree.Link{
		Attr:    tree.EmptyAttr(),
		Inlines: []tree.Inline{tree.Str{Text: "b"}},
		Target:  tree.Target{URL: "/inner"},
	}
	expected := []tree.Inline{
		tree.Str{Text: "[a"}, tree.Space{}, inner, tree.Str{Text: "](/outer)"},
	}
	assert.Equal(t, expected, inlines)
}

func TestEmphasisInsideLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.inline")
	defer teardown()
	//
	inlines := Parse("[*em* text](/url)", refs{})
	link := tree.Link{
		Attr: tree.EmptyAttr(),
		Inlines: []tree.Inline{
			tree.Emph{Inlines: []tree.Inline{tree.Str{Text: "em"}}},
			tree.Space{}, tree.Str{Text: "text"},
		},
		Target: tree.Target{URL: "/url"},
	}
	assert.Equal(t, []tree.Inline{link}, inlines)
}
