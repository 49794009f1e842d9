package markdown

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/mdtree/tree"
)

func parse(t *testing.T, source string) []tree.Block {
	t.Helper()
	doc, err := Reader{}.Read(source)
	assert.NoError(t, err)
	return doc.Blocks
}

func str(words ...string) (inlines []tree.Inline) {
	for i, w := range words {
		if i > 0 {
			inlines = append(inlines, tree.Space{})
		}
		inlines = append(inlines, tree.Str{Text: w})
	}
	return inlines
}

func TestThematicBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	for _, input := range []string{"***", "---", "___", " ***", "* * *"} {
		blocks := parse(t, input+"\n")
		if assert.Len(t, blocks, 1, "input %q", input) {
			assert.Equal(t, tree.HorizontalRule{}, blocks[0], "input %q", input)
		}
	}
}

func TestThematicBreakIndentedIsCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "    ***\n")
	if assert.Len(t, blocks, 1) {
		assert.Equal(t, tree.CodeBlock{Attr: tree.EmptyAttr(), Text: "***"}, blocks[0])
	}
}

func TestATXHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "# foo\n")
	assert.Equal(t, []tree.Block{tree.NewHeader(1, str("foo"))}, blocks)
	blocks = parse(t, "###### foo\n")
	assert.Equal(t, []tree.Block{tree.NewHeader(6, str("foo"))}, blocks)
	blocks = parse(t, "## foo ##\n")
	assert.Equal(t, []tree.Block{tree.NewHeader(2, str("foo"))}, blocks)
}

func TestATXHeadingInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	// seven hashes and a missing space keep the line a paragraph
	blocks := parse(t, "####### foo\n")
	assert.Equal(t, []tree.Block{tree.Para{Inlines: str("#######", "foo")}}, blocks)
	blocks = parse(t, "#5 bolt\n")
	assert.Equal(t, []tree.Block{tree.Para{Inlines: str("#5", "bolt")}}, blocks)
}

func TestSetextHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "Foo\n====\n")
	assert.Equal(t, []tree.Block{tree.NewHeader(1, str("Foo"))}, blocks)
	blocks = parse(t, "Foo\n----\n")
	assert.Equal(t, []tree.Block{tree.NewHeader(2, str("Foo"))}, blocks)
}

func TestSetextUnderlineMustBeUnbroken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "Foo\n= =\n")
	expected := tree.Para{Inlines: []tree.Inline{
		tree.Str{Text: "Foo"}, tree.SoftBreak{},
		tree.Str{Text: "="}, tree.Space{}, tree.Str{Text: "="},
	}}
	assert.Equal(t, []tree.Block{expected}, blocks)
}

func TestTightList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "- a\n- b\n")
	expected := tree.BulletList{Items: [][]tree.Block{
		{tree.Plain{Inlines: str("a")}},
		{tree.Plain{Inlines: str("b")}},
	}}
	assert.Equal(t, []tree.Block{expected}, blocks)
}

func TestLooseList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "- a\n\n- b\n")
	expected := tree.BulletList{Items: [][]tree.Block{
		{tree.Para{Inlines: str("a")}},
		{tree.Para{Inlines: str("b")}},
	}}
	assert.Equal(t, []tree.Block{expected}, blocks)
}

func TestOrderedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "3) three\n4) four\n")
	expected := tree.OrderedList{
		Attr: tree.NewListAttributes(3, ')'),
		Items: [][]tree.Block{
			{tree.Plain{Inlines: str("three")}},
			{tree.Plain{Inlines: str("four")}},
		},
	}
	assert.Equal(t, []tree.Block{expected}, blocks)
}

func TestListItemWithNestedBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	source := "1.  A paragraph\n    with two lines.\n\n        indented code\n\n    > A block quote.\n"
	blocks := parse(t, source)
	para := tree.Para{Inlines: []tree.Inline{
		tree.Str{Text: "A"}, tree.Space{}, tree.Str{Text: "paragraph"}, tree.SoftBreak{},
		tree.Str{Text: "with"}, tree.Space{}, tree.Str{Text: "two"}, tree.Space{}, tree.Str{Text: "lines."},
	}}
	expected := tree.OrderedList{
		Attr: tree.NewListAttributes(1, '.'),
		Items: [][]tree.Block{{
			para,
			tree.CodeBlock{Attr: tree.EmptyAttr(), Text: "indented code"},
			tree.BlockQuote{Blocks: []tree.Block{tree.Para{Inlines: str("A", "block", "quote.")}}},
		}},
	}
	assert.Equal(t, []tree.Block{expected}, blocks)
}

func TestBlockQuote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "> foo\n> bar\n")
	expected := tree.BlockQuote{Blocks: []tree.Block{
		tree.Para{Inlines: []tree.Inline{tree.Str{Text: "foo"}, tree.SoftBreak{}, tree.Str{Text: "bar"}}},
	}}
	assert.Equal(t, []tree.Block{expected}, blocks)
}

func TestBlockQuoteLazyContinuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	// without a '>' marker the line still continues the open paragraph
	blocks := parse(t, "> foo\nbar\n")
	expected := tree.BlockQuote{Blocks: []tree.Block{
		tree.Para{Inlines: []tree.Inline{tree.Str{Text: "foo"}, tree.SoftBreak{}, tree.Str{Text: "bar"}}},
	}}
	assert.Equal(t, []tree.Block{expected}, blocks)
	//
	// a blank line closes the quote
	blocks = parse(t, "> foo\n\nbar\n")
	assert.Equal(t, []tree.Block{
		tree.BlockQuote{Blocks: []tree.Block{tree.Para{Inlines: str("foo")}}},
		tree.Para{Inlines: str("bar")},
	}, blocks)
}

func TestFencedCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "```go\nfmt.Println()\n```\n")
	attr := tree.Attr{Classes: []string{"go"}}
	assert.Equal(t, []tree.Block{tree.CodeBlock{Attr: attr, Text: "fmt.Println()"}}, blocks)
	//
	// an unclosed fence runs to the end of input
	blocks = parse(t, "~~~\ntext\n")
	assert.Equal(t, []tree.Block{tree.CodeBlock{Attr: tree.EmptyAttr(), Text: "text"}}, blocks)
}

func TestParagraphInterrupt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "foo\n# bar\n")
	assert.Equal(t, []tree.Block{
		tree.Para{Inlines: str("foo")},
		tree.NewHeader(1, str("bar")),
	}, blocks)
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "| a | b |\n| --- | :---: |\n| 1 | 2 |\n")
	expected := tree.NewTable([][]tree.Cell{
		{tree.NewCell(str("a")), tree.NewCell(str("b"))},
		{tree.NewCell(str("1")), tree.NewCell(str("2"))},
	}, []tree.Alignment{tree.AlignDefault, tree.AlignCenter})
	assert.Equal(t, []tree.Block{expected}, blocks)
}

func TestTableAfterParagraphLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	// only the last paragraph line becomes the table header
	blocks := parse(t, "text\na | b\n--- | ---\n")
	if assert.Len(t, blocks, 2) {
		assert.Equal(t, tree.Para{Inlines: str("text")}, blocks[0])
		table, ok := blocks[1].(tree.Table)
		if assert.True(t, ok) {
			assert.Len(t, table.ColSpecs, 2)
		}
	}
}

func TestLinkReferenceDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "[foo]: /url \"title\"\n\nsee [foo]\n")
	link := tree.Link{
		Attr:    tree.EmptyAttr(),
		Inlines: str("foo"),
		Target:  tree.Target{URL: "/url", Title: "title"},
	}
	expected := tree.Para{Inlines: []tree.Inline{tree.Str{Text: "see"}, tree.Space{}, link}}
	assert.Equal(t, []tree.Block{expected}, blocks)
}

func TestLinkReferenceFirstDefinitionWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	blocks := parse(t, "[foo]: /first\n\n[FOO]: /second\n\n[Foo]\n")
	link := tree.Link{
		Attr:    tree.EmptyAttr(),
		Inlines: str("Foo"),
		Target:  tree.Target{URL: "/first"},
	}
	assert.Equal(t, []tree.Block{tree.Para{Inlines: []tree.Inline{link}}}, blocks)
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	doc, err := Reader{}.Read("")
	assert.NoError(t, err)
	assert.Empty(t, doc.Blocks)
	doc, err = Reader{}.Read("\n\n\n")
	assert.NoError(t, err)
	assert.Empty(t, doc.Blocks)
}
