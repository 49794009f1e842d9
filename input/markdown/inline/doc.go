/*
Package inline resolves raw text collected during the block phase into
inline elements.

Resolution works on one flat text fragment at a time, newlines included.
A scan pass tokenizes the fragment: code spans and backslash escapes are
final the moment they are seen, while emphasis delimiters and link
brackets only record their potential. A second pass runs the delimiter
stack algorithm over the recorded potentials, matching openers to
closers innermost first. Link brackets win over emphasis, so bracket
interiors are resolved eagerly when the closing bracket is found.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.inline'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.inline")
}
