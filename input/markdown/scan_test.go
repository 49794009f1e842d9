package markdown

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSkipIndent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	ln := skipIndent("   foo", 0)
	assert.Equal(t, 3, ln.indent)
	assert.Equal(t, 3, ln.total)
	assert.Equal(t, 'f', ln.first)
	assert.Equal(t, "foo", ln.text)
	assert.False(t, ln.blank)
}

func TestSkipIndentTabStops(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	// a tab advances to the next multiple of four columns
	ln := skipIndent("\tfoo", 0)
	assert.Equal(t, 4, ln.indent)
	ln = skipIndent(" \tfoo", 0)
	assert.Equal(t, 4, ln.indent)
	ln = skipIndent("  \t foo", 0)
	assert.Equal(t, 5, ln.indent)
	// the column count continues behind a container marker
	ln = skipIndent("\tfoo", 2)
	assert.Equal(t, 2, ln.indent)
	assert.Equal(t, 4, ln.total)
}

func TestSkipIndentBlank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	ln := skipIndent("   ", 0)
	assert.True(t, ln.blank)
	assert.Equal(t, 3, ln.indent)
	ln = skipIndent("", 0)
	assert.True(t, ln.blank)
}

func TestLineRest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	ln := skipIndent("- item", 0)
	assert.Equal(t, " item", ln.rest())
	rest := ln.restLine()
	assert.Equal(t, 1, rest.indent)
	assert.Equal(t, "item", rest.text)
}

func TestIterUntilUnescaped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	it := newIter(`foo\]bar]rest`)
	label, ok := it.untilUnescaped(']')
	assert.True(t, ok)
	assert.Equal(t, `foo\]bar`, label)
	assert.Equal(t, "rest", it.restString())
	//
	it = newIter("no closer")
	_, ok = it.untilUnescaped(']')
	assert.False(t, ok)
}

func TestIterLinkDestination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	it := newIter("</enclosed url> tail")
	dest, ok := it.linkDestination()
	assert.True(t, ok)
	assert.Equal(t, "/enclosed url", dest)
	//
	it = newIter("/bare tail")
	dest, ok = it.linkDestination()
	assert.True(t, ok)
	assert.Equal(t, "/bare", dest)
}
