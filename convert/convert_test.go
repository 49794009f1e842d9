package convert

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/mdtree/core"
)

func TestRegistries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.convert")
	defer teardown()
	//
	assert.Equal(t, []string{"markdown", "native"}, Readers())
	assert.Equal(t, []string{"latex", "native", "typst"}, Writers())
}

func TestUnknownFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.convert")
	defer teardown()
	//
	_, err := Convert("# hi\n", "markdown", "docx")
	if assert.Error(t, err) {
		assert.Equal(t, core.EMISSING, core.Code(err))
	}
	_, err = Convert("# hi\n", "rst", "native")
	if assert.Error(t, err) {
		assert.Equal(t, core.EMISSING, core.Code(err))
	}
}

func TestMarkdownToNative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.convert")
	defer teardown()
	//
	result, err := Convert("# Title\n\nSome *text*.\n", "markdown", "native")
	assert.NoError(t, err)
	var envelope map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal([]byte(result), &envelope))
	assert.Contains(t, envelope, "pandoc-api-version")
	assert.Contains(t, envelope, "blocks")
}

func TestNativeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.convert")
	defer teardown()
	//
	source := "# Title\n\n- a\n- b\n\n> quote\n"
	first, err := Convert(source, "markdown", "native")
	assert.NoError(t, err)
	second, err := Convert(first, "native", "native")
	assert.NoError(t, err)
	assert.JSONEq(t, first, second)
}

func TestMarkdownToLatex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.convert")
	defer teardown()
	//
	result, err := Convert("# Title\n", "markdown", "latex")
	assert.NoError(t, err)
	assert.Contains(t, result, "\\section{Title}")
}
