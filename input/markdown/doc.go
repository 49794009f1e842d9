/*
Package markdown implements a reader for GitHub Flavoured Markdown.

Input is processed line by line. A driver keeps exactly one block under
construction at a time; every new line is either consumed by that block,
closes it, or closes it and opens a new one. Container blocks (block
quotes and list items) own a nested driver of their own, so arbitrary
nesting falls out of the same per-line protocol. Inline content is kept
as raw text until the block phase is complete and all link reference
definitions are known, then handed to the inline sub-package for
resolution.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.markdown")
}
