/*
Package convert ties readers and writers together. Formats are looked up
by name, so clients and the CLI can dispatch on user input without
knowing the packages behind it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package convert

import (
	"sort"

	"github.com/npillmayer/mdtree/backend/latex"
	nativeout "github.com/npillmayer/mdtree/backend/native"
	"github.com/npillmayer/mdtree/backend/typst"
	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/input/markdown"
	nativein "github.com/npillmayer/mdtree/input/native"
	"github.com/npillmayer/mdtree/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.convert'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.convert")
}

// Reader parses a source document into a document tree.
type Reader interface {
	Read(source string) (*tree.Document, error)
}

// Writer renders a document tree as markup text.
type Writer interface {
	Write(doc *tree.Document) (string, error)
}

var readers = map[string]Reader{
	"markdown": markdown.Reader{},
	"native":   nativein.Reader{},
}

var writers = map[string]Writer{
	"latex":  latex.Writer{},
	"native": nativeout.Writer{},
	"typst":  typst.Writer{},
}

// Readers returns the names of all registered readers, sorted.
func Readers() []string {
	names := make([]string, 0, len(readers))
	for name := range readers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Writers returns the names of all registered writers, sorted.
func Writers() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReaderFor returns the reader registered under name, or an EMISSING
// error if there is none.
func ReaderFor(name string) (Reader, error) {
	r, ok := readers[name]
	if !ok {
		return nil, core.Error(core.EMISSING, "no reader for format '%s'", name)
	}
	return r, nil
}

// WriterFor returns the writer registered under name, or an EMISSING
// error if there is none.
func WriterFor(name string) (Writer, error) {
	w, ok := writers[name]
	if !ok {
		return nil, core.Error(core.EMISSING, "no writer for format '%s'", name)
	}
	return w, nil
}

// Convert parses source with the reader registered under from and
// renders the resulting tree with the writer registered under to.
func Convert(source, from, to string) (string, error) {
	r, err := ReaderFor(from)
	if err != nil {
		return "", err
	}
	w, err := WriterFor(to)
	if err != nil {
		return "", err
	}
	tracer().Debugf("converting %d bytes from %s to %s", len(source), from, to)
	doc, err := r.Read(source)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "reading %s input failed", from)
	}
	return w.Write(doc)
}
