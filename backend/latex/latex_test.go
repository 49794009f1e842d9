package latex

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/tree"
)

// content extracts the document body between preamble and trailer.
func content(t *testing.T, document string) string {
	t.Helper()
	start := strings.Index(document, "\\begin{document}\n")
	end := strings.Index(document, "\\end{document}")
	if start < 0 || end < 0 {
		t.Fatalf("no document envelope in %q", document)
	}
	return strings.TrimSpace(document[start+len("\\begin{document}\n") : end])
}

func write(t *testing.T, blocks ...tree.Block) string {
	t.Helper()
	result, err := Writer{}.Write(&tree.Document{Blocks: blocks})
	assert.NoError(t, err)
	return content(t, result)
}

func TestSpecialChars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	result := write(t, tree.Plain{Inlines: []tree.Inline{tree.Str{Text: "&%$#_{}~^\\`"}}})
	expected := "\\&\\%\\$\\#\\_\\{\\}\\textasciitilde{}\\^{}\\textbackslash{}\\textasciigrave{}"
	assert.Equal(t, expected, result)
}

func TestStr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	assert.Equal(t, "str", write(t, tree.Plain{Inlines: []tree.Inline{tree.Str{Text: "str"}}}))
}

func TestHeaderAndEmphasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	result := write(t, tree.NewHeader(2, []tree.Inline{tree.Str{Text: "Title"}}))
	assert.Equal(t, "\\subsection{Title}", result)
	//
	result = write(t, tree.Plain{Inlines: []tree.Inline{
		tree.Emph{Inlines: []tree.Inline{tree.Str{Text: "em"}}},
		tree.Space{},
		tree.Strong{Inlines: []tree.Inline{tree.Str{Text: "strong"}}},
	}})
	assert.Equal(t, "\\emph{em} \\textbf{strong}", result)
}

func TestDeepHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	result := write(t, tree.NewHeader(6, []tree.Inline{tree.Str{Text: "deep"}}))
	assert.Equal(t, "\\textbf{deep}", result)
	//
	_, err := Writer{}.Write(&tree.Document{Blocks: []tree.Block{
		tree.NewHeader(7, []tree.Inline{tree.Str{Text: "deeper"}}),
	}})
	if assert.Error(t, err) {
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
}

func TestCodeBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	block := tree.CodeBlock{Attr: tree.Attr{Classes: []string{"go"}}, Text: "x := 1"}
	result := write(t, block)
	assert.Equal(t, "\\begin{lstlisting}[language=go]\nx := 1\n\\end{lstlisting}", result)
}

func TestTightList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	list := tree.BulletList{Items: [][]tree.Block{
		{tree.Plain{Inlines: []tree.Inline{tree.Str{Text: "a"}}}},
		{tree.Plain{Inlines: []tree.Inline{tree.Str{Text: "b"}}}},
	}}
	result := write(t, list)
	assert.Contains(t, result, "\\tightlist")
	assert.Contains(t, result, "\\begin{itemize}")
}

func TestOrderedListStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	list := tree.OrderedList{
		Attr: tree.NewListAttributes(3, '.'),
		Items: [][]tree.Block{
			{tree.Para{Inlines: []tree.Inline{tree.Str{Text: "three"}}}},
		},
	}
	result := write(t, list)
	assert.Contains(t, result, "\\setcounter{enumi}{2}")
	assert.NotContains(t, result, "\\tightlist")
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	table := tree.NewTable([][]tree.Cell{
		{tree.NewCell([]tree.Inline{tree.Str{Text: "a"}}), tree.NewCell([]tree.Inline{tree.Str{Text: "b"}})},
		{tree.NewCell([]tree.Inline{tree.Str{Text: "1"}}), tree.NewCell([]tree.Inline{tree.Str{Text: "2"}})},
	}, []tree.Alignment{tree.AlignLeft, tree.AlignCenter})
	result := write(t, table)
	assert.Contains(t, result, "\\begin{tabular}{|l|c|}")
	assert.Contains(t, result, "a&b\\\\\\hline")
	assert.Contains(t, result, "1&2\\\\\\hline")
}

func TestUnsupportedConstruct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.backend")
	defer teardown()
	//
	_, err := Writer{}.Write(&tree.Document{Blocks: []tree.Block{tree.Div{}}})
	if assert.Error(t, err) {
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
}
