/*
Package latex renders a document tree as a standalone LaTeX article.

Only the constructs produced by the Markdown reader are covered. Writing
a document containing any other block or inline kind returns an invalid
argument error naming the construct, so information loss is never
silent.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package latex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.backend'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.backend")
}
