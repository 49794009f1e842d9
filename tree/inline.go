package tree

// Inline is a single inline element. Like Block it is a closed sum type.
type Inline interface {
	inline()
}

// Str is a run of text.
type Str struct {
	Text string
}

// Emph is emphasized text.
type Emph struct {
	Inlines []Inline
}

// Underline is underlined text.
type Underline struct {
	Inlines []Inline
}

// Strong is strongly emphasized text.
type Strong struct {
	Inlines []Inline
}

// Strikeout is struck-out text.
type Strikeout struct {
	Inlines []Inline
}

// Superscript is superscripted text.
type Superscript struct {
	Inlines []Inline
}

// Subscript is subscripted text.
type Subscript struct {
	Inlines []Inline
}

// SmallCaps is small-caps text.
type SmallCaps struct {
	Inlines []Inline
}

// QuoteType is the kind of quotation marks of a Quoted inline.
type QuoteType int

// Quotation mark kinds.
const (
	SingleQuote QuoteType = iota
	DoubleQuote
)

// Quoted is quoted text.
type Quoted struct {
	Type    QuoteType
	Inlines []Inline
}

// CitationMode is the rendering mode of a citation.
type CitationMode int

// Citation modes.
const (
	NormalCitation CitationMode = iota
	AuthorInText
	SuppressAuthor
)

// Citation is a single citation of a Cite inline.
type Citation struct {
	ID      string
	Prefix  []Inline
	Suffix  []Inline
	Mode    CitationMode
	NoteNum int
	Hash    int
}

// Cite is a citation group.
type Cite struct {
	Citations []Citation
	Inlines   []Inline
}

// Code is an inline code span with literal content.
type Code struct {
	Attr Attr
	Text string
}

// Space is an inter-word space.
type Space struct{}

// SoftBreak is a soft line break.
type SoftBreak struct{}

// LineBreak is a hard line break.
type LineBreak struct{}

// MathType is the kind of a Math inline.
type MathType int

// Math kinds.
const (
	DisplayMath MathType = iota
	InlineMath
)

// Math is TeX math.
type Math struct {
	Type MathType
	Text string
}

// RawInline is raw text in a named target format.
type RawInline struct {
	Format string
	Text   string
}

// Target is a link or image target: a URL and a title.
type Target struct {
	URL   string
	Title string
}

// Link is a hyperlink with alt text.
type Link struct {
	Attr    Attr
	Inlines []Inline
	Target  Target
}

// Image is an image with alt text.
type Image struct {
	Attr    Attr
	Inlines []Inline
	Target  Target
}

// Note is a footnote or endnote.
type Note struct {
	Blocks []Block
}

// Span is a generic inline container.
type Span struct {
	Attr    Attr
	Inlines []Inline
}

func (Str) inline()         {}
func (Emph) inline()        {}
func (Underline) inline()   {}
func (Strong) inline()      {}
func (Strikeout) inline()   {}
func (Superscript) inline() {}
func (Subscript) inline()   {}
func (SmallCaps) inline()   {}
func (Quoted) inline()      {}
func (Cite) inline()        {}
func (Code) inline()        {}
func (Space) inline()       {}
func (SoftBreak) inline()   {}
func (LineBreak) inline()   {}
func (Math) inline()        {}
func (RawInline) inline()   {}
func (Link) inline()        {}
func (Image) inline()       {}
func (Note) inline()        {}
func (Span) inline()        {}
