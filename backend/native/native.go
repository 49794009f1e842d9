/*
Package native renders a document tree as Pandoc-native JSON, suitable
for piping into the pandoc tool.

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

// Writer serializes a document tree as Pandoc-native JSON.
type Writer struct{}

// Write serializes doc, including the pandoc-api-version envelope.
func (Writer) Write(doc *tree.Document) (string, error) {
	data, err := tree.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
