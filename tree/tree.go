package tree

import "encoding/json"

// Document is a parsed document: metadata plus an ordered sequence of
// top-level blocks. It is compatible with the Pandoc AST.
type Document struct {
	Meta   Meta
	Blocks []Block
}

// Meta holds document metadata. The parsing core never touches it; it is
// carried through readers and writers as raw JSON values.
type Meta map[string]json.RawMessage

// Attr is a triple of identifier, classes and key/value pairs.
type Attr struct {
	ID      string
	Classes []string
	KeyVals [][2]string
}

// EmptyAttr returns an Attr with no identifier, classes or key/value pairs.
func EmptyAttr() Attr {
	return Attr{}
}

// IsEmpty returns true if the attribute carries no information.
func (a Attr) IsEmpty() bool {
	return a.ID == "" && len(a.Classes) == 0 && len(a.KeyVals) == 0
}

// Block is a single block element of a document. It is a closed sum type:
// the set of implementations is fixed.
type Block interface {
	block()
}

// Plain is inline text that is not wrapped in a paragraph, e.g. the content
// of a tight list item.
type Plain struct {
	Inlines []Inline
}

// Para is a paragraph.
type Para struct {
	Inlines []Inline
}

// LineBlock is a sequence of non-breaking lines.
type LineBlock struct {
	Lines [][]Inline
}

// CodeBlock is literal text, never inline-parsed. The first class of Attr
// carries the info-string language, if any.
type CodeBlock struct {
	Attr Attr
	Text string
}

// RawBlock is a raw block in a named target format.
type RawBlock struct {
	Format string
	Text   string
}

// BlockQuote is a quoted sequence of blocks.
type BlockQuote struct {
	Blocks []Block
}

// OrderedList is a numbered list. Each item is a sequence of blocks.
type OrderedList struct {
	Attr  ListAttributes
	Items [][]Block
}

// BulletList is an unordered list. Each item is a sequence of blocks.
type BulletList struct {
	Items [][]Block
}

// Definition is one item of a DefinitionList: a term and one or more
// definitions for it.
type Definition struct {
	Term        []Inline
	Definitions [][]Block
}

// DefinitionList is a list of terms with definitions.
type DefinitionList struct {
	Items []Definition
}

// Header is a heading with level 1–6.
type Header struct {
	Level   int
	Attr    Attr
	Inlines []Inline
}

// HorizontalRule is a thematic break.
type HorizontalRule struct{}

// Figure is a block container with a caption.
type Figure struct {
	Attr    Attr
	Caption Caption
	Blocks  []Block
}

// Div is a generic block container.
type Div struct {
	Attr   Attr
	Blocks []Block
}

func (Plain) block()          {}
func (Para) block()           {}
func (LineBlock) block()      {}
func (CodeBlock) block()      {}
func (RawBlock) block()       {}
func (BlockQuote) block()     {}
func (OrderedList) block()    {}
func (BulletList) block()     {}
func (DefinitionList) block() {}
func (Header) block()         {}
func (HorizontalRule) block() {}
func (Table) block()          {}
func (Figure) block()         {}
func (Div) block()            {}

// ListNumberStyle is the numbering style of an ordered list.
type ListNumberStyle int

// Number styles for ordered lists. Markdown input only ever produces
// Decimal.
const (
	DefaultStyle ListNumberStyle = iota
	Example
	Decimal
	LowerRoman
	UpperRoman
	LowerAlpha
	UpperAlpha
)

// ListNumberDelim is the delimiter style of an ordered list.
type ListNumberDelim int

// Delimiter styles for ordered lists.
const (
	DefaultDelim ListNumberDelim = iota
	Period
	OneParen
	TwoParens
)

// ListAttributes carries the starting number, numbering style and delimiter
// of an ordered list.
type ListAttributes struct {
	Start int
	Style ListNumberStyle
	Delim ListNumberDelim
}

// NewListAttributes creates attributes for an ordered list with decimal
// numbering, given the starting number and the marker's closing character
// ('.' or ')').
func NewListAttributes(start int, closing rune) ListAttributes {
	delim := Period
	if closing == ')' {
		delim = OneParen
	}
	return ListAttributes{Start: start, Style: Decimal, Delim: delim}
}

// NewHeader creates a heading with empty attributes.
func NewHeader(level int, inlines []Inline) Header {
	return Header{Level: level, Attr: EmptyAttr(), Inlines: inlines}
}
