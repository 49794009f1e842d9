/*
Package tree defines the document tree produced by the input readers and
consumed by the output writers.

The type set mirrors the Pandoc AST: a Document holds metadata and a
sequence of Block elements, blocks contain further blocks or Inline
elements. Block and Inline are closed sum types: every variant is known
at design time and writers are expected to switch exhaustively over them,
rejecting variants they do not support.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.tree")
}
