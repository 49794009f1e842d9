/*
Package native implements a reader for Pandoc-native JSON, the format
produced by the native writer and by the pandoc tool itself.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package native

import (
	"github.com/npillmayer/mdtree/tree"
)

// Reader parses Pandoc-native JSON into a document tree.
type Reader struct{}

// Read parses source. It fails on malformed JSON and on unknown block or
// inline tags.
func (Reader) Read(source string) (*tree.Document, error) {
	return tree.Unmarshal([]byte(source))
}
