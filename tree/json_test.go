package tree

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func sampleDocument() *Document {
	table := NewTable([][]Cell{
		{NewCell([]Inline{Str{Text: "a"}}), NewCell([]Inline{Str{Text: "b"}})},
		{NewCell([]Inline{Str{Text: "1"}}), NewCell(nil)},
	}, []Alignment{AlignDefault, AlignCenter})
	return &Document{
		Meta: Meta{},
		Blocks: []Block{
			NewHeader(1, []Inline{Str{Text: "Title"}}),
			Para{Inlines: []Inline{
				Str{Text: "some"}, Space{},
				Emph{Inlines: []Inline{Str{Text: "emphasized"}}}, SoftBreak{},
				Strong{Inlines: []Inline{Str{Text: "strong"}}}, Space{},
				Strikeout{Inlines: []Inline{Str{Text: "gone"}}}, LineBreak{},
				Code{Attr: EmptyAttr(), Text: "x := 1"}, Space{},
				Link{Attr: EmptyAttr(), Inlines: []Inline{Str{Text: "link"}}, Target: Target{URL: "/url", Title: "t"}},
				Image{Attr: EmptyAttr(), Inlines: []Inline{Str{Text: "img"}}, Target: Target{URL: "/i.png"}},
			}},
			CodeBlock{Attr: Attr{Classes: []string{"go"}}, Text: "func main() {}"},
			BlockQuote{Blocks: []Block{Para{Inlines: []Inline{Str{Text: "quoted"}}}}},
			OrderedList{
				Attr: NewListAttributes(3, ')'),
				Items: [][]Block{
					{Plain{Inlines: []Inline{Str{Text: "three"}}}},
					{Plain{Inlines: []Inline{Str{Text: "four"}}}},
				},
			},
			BulletList{Items: [][]Block{
				{Plain{Inlines: []Inline{Str{Text: "item"}}}},
			}},
			HorizontalRule{},
			table,
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.tree")
	defer teardown()
	//
	doc := sampleDocument()
	data, err := Marshal(doc)
	assert.NoError(t, err)
	decoded, err := Unmarshal(data)
	assert.NoError(t, err)
	assert.Equal(t, doc, decoded)
	//
	// encoding the decoded tree again must reproduce the bytes
	again, err := Marshal(decoded)
	assert.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestJSONEnvelope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.tree")
	defer teardown()
	//
	data, err := Marshal(&Document{})
	assert.NoError(t, err)
	var envelope map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(data, &envelope))
	assert.JSONEq(t, "[1,23,1]", string(envelope["pandoc-api-version"]))
	assert.JSONEq(t, "{}", string(envelope["meta"]))
	assert.JSONEq(t, "[]", string(envelope["blocks"]))
}

func TestJSONTagged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.tree")
	defer teardown()
	//
	data, err := Marshal(&Document{Blocks: []Block{
		Para{Inlines: []Inline{Str{Text: "hi"}, Space{}}},
	}})
	assert.NoError(t, err)
	assert.Contains(t, string(data), `{"t":"Str","c":"hi"}`)
	assert.Contains(t, string(data), `{"t":"Space"}`)
}

func TestJSONUnknownTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.tree")
	defer teardown()
	//
	_, err := Unmarshal([]byte(`{"meta":{},"blocks":[{"t":"Bogus"}]}`))
	assert.Error(t, err)
	_, err = Unmarshal([]byte(`not json`))
	assert.Error(t, err)
}
