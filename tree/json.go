package tree

import (
	"encoding/json"
	"fmt"
)

// apiVersion is the Pandoc AST version emitted in the JSON envelope.
var apiVersion = []int{1, 23, 1}

// Marshal serializes a document into Pandoc-native JSON, i.e. the format
// produced by `pandoc -t json`.
func Marshal(doc *Document) ([]byte, error) {
	meta := doc.Meta
	if meta == nil {
		meta = Meta{}
	}
	envelope := map[string]interface{}{
		"pandoc-api-version": apiVersion,
		"meta":               meta,
		"blocks":             blocksJSON(doc.Blocks),
	}
	return json.Marshal(envelope)
}

// Unmarshal deserializes a document from Pandoc-native JSON.
func Unmarshal(data []byte) (*Document, error) {
	var envelope struct {
		Meta   Meta              `json:"meta"`
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	blocks, err := decodeBlocks(envelope.Blocks)
	if err != nil {
		return nil, err
	}
	meta := envelope.Meta
	if meta == nil {
		meta = Meta{}
	}
	return &Document{Meta: meta, Blocks: blocks}, nil
}

// --- encoding ---------------------------------------------------------

type taggedJSON struct {
	T string      `json:"t"`
	C interface{} `json:"c,omitempty"`
}

func tag(t string) taggedJSON {
	return taggedJSON{T: t}
}

func tagC(t string, c interface{}) taggedJSON {
	return taggedJSON{T: t, C: c}
}

func attrJSON(a Attr) []interface{} {
	classes := a.Classes
	if classes == nil {
		classes = []string{}
	}
	kvs := make([][]string, 0, len(a.KeyVals))
	for _, kv := range a.KeyVals {
		kvs = append(kvs, []string{kv[0], kv[1]})
	}
	return []interface{}{a.ID, classes, kvs}
}

func blocksJSON(blocks []Block) []taggedJSON {
	result := make([]taggedJSON, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, blockJSON(b))
	}
	return result
}

func itemsJSON(items [][]Block) [][]taggedJSON {
	result := make([][]taggedJSON, 0, len(items))
	for _, item := range items {
		result = append(result, blocksJSON(item))
	}
	return result
}

func blockJSON(b Block) taggedJSON {
	switch b := b.(type) {
	case Plain:
		return tagC("Plain", inlinesJSON(b.Inlines))
	case Para:
		return tagC("Para", inlinesJSON(b.Inlines))
	case LineBlock:
		lines := make([][]taggedJSON, 0, len(b.Lines))
		for _, l := range b.Lines {
			lines = append(lines, inlinesJSON(l))
		}
		return tagC("LineBlock", lines)
	case CodeBlock:
		return tagC("CodeBlock", []interface{}{attrJSON(b.Attr), b.Text})
	case RawBlock:
		return tagC("RawBlock", []interface{}{b.Format, b.Text})
	case BlockQuote:
		return tagC("BlockQuote", blocksJSON(b.Blocks))
	case OrderedList:
		attrs := []interface{}{b.Attr.Start, tag(numberStyleNames[b.Attr.Style]), tag(numberDelimNames[b.Attr.Delim])}
		return tagC("OrderedList", []interface{}{attrs, itemsJSON(b.Items)})
	case BulletList:
		return tagC("BulletList", itemsJSON(b.Items))
	case DefinitionList:
		items := make([][]interface{}, 0, len(b.Items))
		for _, d := range b.Items {
			items = append(items, []interface{}{inlinesJSON(d.Term), itemsJSON(d.Definitions)})
		}
		return tagC("DefinitionList", items)
	case Header:
		return tagC("Header", []interface{}{b.Level, attrJSON(b.Attr), inlinesJSON(b.Inlines)})
	case HorizontalRule:
		return tag("HorizontalRule")
	case Table:
		return tagC("Table", tableJSON(b))
	case Figure:
		return tagC("Figure", []interface{}{attrJSON(b.Attr), captionJSON(b.Caption), blocksJSON(b.Blocks)})
	case Div:
		return tagC("Div", []interface{}{attrJSON(b.Attr), blocksJSON(b.Blocks)})
	}
	tracer().Errorf("unknown block type %T", b)
	return tag("Null")
}

func inlinesJSON(inlines []Inline) []taggedJSON {
	result := make([]taggedJSON, 0, len(inlines))
	for _, inl := range inlines {
		result = append(result, inlineJSON(inl))
	}
	return result
}

func inlineJSON(inl Inline) taggedJSON {
	switch inl := inl.(type) {
	case Str:
		return tagC("Str", inl.Text)
	case Emph:
		return tagC("Emph", inlinesJSON(inl.Inlines))
	case Underline:
		return tagC("Underline", inlinesJSON(inl.Inlines))
	case Strong:
		return tagC("Strong", inlinesJSON(inl.Inlines))
	case Strikeout:
		return tagC("Strikeout", inlinesJSON(inl.Inlines))
	case Superscript:
		return tagC("Superscript", inlinesJSON(inl.Inlines))
	case Subscript:
		return tagC("Subscript", inlinesJSON(inl.Inlines))
	case SmallCaps:
		return tagC("SmallCaps", inlinesJSON(inl.Inlines))
	case Quoted:
		return tagC("Quoted", []interface{}{tag(quoteTypeNames[inl.Type]), inlinesJSON(inl.Inlines)})
	case Cite:
		citations := make([]interface{}, 0, len(inl.Citations))
		for _, c := range inl.Citations {
			citations = append(citations, map[string]interface{}{
				"citationId":      c.ID,
				"citationPrefix":  inlinesJSON(c.Prefix),
				"citationSuffix":  inlinesJSON(c.Suffix),
				"citationMode":    tag(citationModeNames[c.Mode]),
				"citationNoteNum": c.NoteNum,
				"citationHash":    c.Hash,
			})
		}
		return tagC("Cite", []interface{}{citations, inlinesJSON(inl.Inlines)})
	case Code:
		return tagC("Code", []interface{}{attrJSON(inl.Attr), inl.Text})
	case Space:
		return tag("Space")
	case SoftBreak:
		return tag("SoftBreak")
	case LineBreak:
		return tag("LineBreak")
	case Math:
		return tagC("Math", []interface{}{tag(mathTypeNames[inl.Type]), inl.Text})
	case RawInline:
		return tagC("RawInline", []interface{}{inl.Format, inl.Text})
	case Link:
		return tagC("Link", []interface{}{attrJSON(inl.Attr), inlinesJSON(inl.Inlines), []string{inl.Target.URL, inl.Target.Title}})
	case Image:
		return tagC("Image", []interface{}{attrJSON(inl.Attr), inlinesJSON(inl.Inlines), []string{inl.Target.URL, inl.Target.Title}})
	case Note:
		return tagC("Note", blocksJSON(inl.Blocks))
	case Span:
		return tagC("Span", []interface{}{attrJSON(inl.Attr), inlinesJSON(inl.Inlines)})
	}
	tracer().Errorf("unknown inline type %T", inl)
	return tag("Null")
}

func captionJSON(c Caption) []interface{} {
	var short interface{}
	if c.Short != nil {
		short = inlinesJSON(c.Short)
	}
	return []interface{}{short, blocksJSON(c.Blocks)}
}

func colWidthJSON(w ColWidth) taggedJSON {
	if w.Set {
		return tagC("ColWidth", w.Width)
	}
	return tag("ColWidthDefault")
}

func rowJSON(r Row) []interface{} {
	cells := make([]interface{}, 0, len(r.Cells))
	for _, c := range r.Cells {
		cells = append(cells, []interface{}{
			attrJSON(c.Attr), tag(alignmentNames[c.Align]), c.RowSpan, c.ColSpan, blocksJSON(c.Blocks),
		})
	}
	return []interface{}{attrJSON(r.Attr), cells}
}

func rowsJSON(rows []Row) []interface{} {
	result := make([]interface{}, 0, len(rows))
	for _, r := range rows {
		result = append(result, rowJSON(r))
	}
	return result
}

func tableJSON(t Table) []interface{} {
	specs := make([]interface{}, 0, len(t.ColSpecs))
	for _, s := range t.ColSpecs {
		specs = append(specs, []interface{}{tag(alignmentNames[s.Align]), colWidthJSON(s.Width)})
	}
	bodies := make([]interface{}, 0, len(t.Bodies))
	for _, b := range t.Bodies {
		bodies = append(bodies, []interface{}{attrJSON(b.Attr), b.RowHeadColumns, rowsJSON(b.Head), rowsJSON(b.Rows)})
	}
	return []interface{}{
		attrJSON(t.Attr),
		captionJSON(t.Caption),
		specs,
		[]interface{}{attrJSON(t.Head.Attr), rowsJSON(t.Head.Rows)},
		bodies,
		[]interface{}{attrJSON(t.Foot.Attr), rowsJSON(t.Foot.Rows)},
	}
}

var alignmentNames = map[Alignment]string{
	AlignDefault: "AlignDefault",
	AlignLeft:    "AlignLeft",
	AlignRight:   "AlignRight",
	AlignCenter:  "AlignCenter",
}

var numberStyleNames = map[ListNumberStyle]string{
	DefaultStyle: "DefaultStyle",
	Example:      "Example",
	Decimal:      "Decimal",
	LowerRoman:   "LowerRoman",
	UpperRoman:   "UpperRoman",
	LowerAlpha:   "LowerAlpha",
	UpperAlpha:   "UpperAlpha",
}

var numberDelimNames = map[ListNumberDelim]string{
	DefaultDelim: "DefaultDelim",
	Period:       "Period",
	OneParen:     "OneParen",
	TwoParens:    "TwoParens",
}

var quoteTypeNames = map[QuoteType]string{
	SingleQuote: "SingleQuote",
	DoubleQuote: "DoubleQuote",
}

var citationModeNames = map[CitationMode]string{
	NormalCitation: "NormalCitation",
	AuthorInText:   "AuthorInText",
	SuppressAuthor: "SuppressAuthor",
}

var mathTypeNames = map[MathType]string{
	DisplayMath: "DisplayMath",
	InlineMath:  "InlineMath",
}

// --- decoding ---------------------------------------------------------

type rawTagged struct {
	T string          `json:"t"`
	C json.RawMessage `json:"c"`
}

func decodeBlocks(raw []json.RawMessage) ([]Block, error) {
	var blocks []Block
	for _, r := range raw {
		b, err := decodeBlock(r)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func decodeBlockList(data json.RawMessage) ([]Block, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return decodeBlocks(raw)
}

func decodeItems(data json.RawMessage) ([][]Block, error) {
	var raw [][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var items [][]Block
	for _, r := range raw {
		blocks, err := decodeBlocks(r)
		if err != nil {
			return nil, err
		}
		items = append(items, blocks)
	}
	return items, nil
}

func decodeParts(data json.RawMessage, n int) ([]json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, err
	}
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(parts))
	}
	return parts, nil
}

func decodeAttr(data json.RawMessage) (Attr, error) {
	parts, err := decodeParts(data, 3)
	if err != nil {
		return Attr{}, err
	}
	var a Attr
	if err := json.Unmarshal(parts[0], &a.ID); err != nil {
		return Attr{}, err
	}
	if err := json.Unmarshal(parts[1], &a.Classes); err != nil {
		return Attr{}, err
	}
	var kvs [][]string
	if err := json.Unmarshal(parts[2], &kvs); err != nil {
		return Attr{}, err
	}
	for _, kv := range kvs {
		if len(kv) == 2 {
			a.KeyVals = append(a.KeyVals, [2]string{kv[0], kv[1]})
		}
	}
	if len(a.Classes) == 0 {
		a.Classes = nil
	}
	return a, nil
}

func decodeTag(data json.RawMessage) (string, error) {
	var t rawTagged
	if err := json.Unmarshal(data, &t); err != nil {
		return "", err
	}
	return t.T, nil
}

func decodeBlock(data json.RawMessage) (Block, error) {
	var t rawTagged
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	switch t.T {
	case "Plain":
		inlines, err := decodeInlineList(t.C)
		if err != nil {
			return nil, err
		}
		return Plain{Inlines: inlines}, nil
	case "Para":
		inlines, err := decodeInlineList(t.C)
		if err != nil {
			return nil, err
		}
		return Para{Inlines: inlines}, nil
	case "LineBlock":
		var raw [][]json.RawMessage
		if err := json.Unmarshal(t.C, &raw); err != nil {
			return nil, err
		}
		var lines [][]Inline
		for _, r := range raw {
			l, err := decodeInlines(r)
			if err != nil {
				return nil, err
			}
			lines = append(lines, l)
		}
		return LineBlock{Lines: lines}, nil
	case "CodeBlock":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		var text string
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, err
		}
		return CodeBlock{Attr: attr, Text: text}, nil
	case "RawBlock":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		var format, text string
		if err := json.Unmarshal(parts[0], &format); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, err
		}
		return RawBlock{Format: format, Text: text}, nil
	case "BlockQuote":
		blocks, err := decodeBlockList(t.C)
		if err != nil {
			return nil, err
		}
		return BlockQuote{Blocks: blocks}, nil
	case "OrderedList":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		attrParts, err := decodeParts(parts[0], 3)
		if err != nil {
			return nil, err
		}
		var attrs ListAttributes
		if err := json.Unmarshal(attrParts[0], &attrs.Start); err != nil {
			return nil, err
		}
		styleName, err := decodeTag(attrParts[1])
		if err != nil {
			return nil, err
		}
		attrs.Style = numberStyleByName(styleName)
		delimName, err := decodeTag(attrParts[2])
		if err != nil {
			return nil, err
		}
		attrs.Delim = numberDelimByName(delimName)
		items, err := decodeItems(parts[1])
		if err != nil {
			return nil, err
		}
		return OrderedList{Attr: attrs, Items: items}, nil
	case "BulletList":
		items, err := decodeItems(t.C)
		if err != nil {
			return nil, err
		}
		return BulletList{Items: items}, nil
	case "DefinitionList":
		var raw [][]json.RawMessage
		if err := json.Unmarshal(t.C, &raw); err != nil {
			return nil, err
		}
		var defs []Definition
		for _, r := range raw {
			if len(r) != 2 {
				return nil, fmt.Errorf("malformed definition list item")
			}
			term, err := decodeInlineList(r[0])
			if err != nil {
				return nil, err
			}
			definitions, err := decodeItems(r[1])
			if err != nil {
				return nil, err
			}
			defs = append(defs, Definition{Term: term, Definitions: definitions})
		}
		return DefinitionList{Items: defs}, nil
	case "Header":
		parts, err := decodeParts(t.C, 3)
		if err != nil {
			return nil, err
		}
		var level int
		if err := json.Unmarshal(parts[0], &level); err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[1])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlineList(parts[2])
		if err != nil {
			return nil, err
		}
		return Header{Level: level, Attr: attr, Inlines: inlines}, nil
	case "HorizontalRule":
		return HorizontalRule{}, nil
	case "Table":
		return decodeTable(t.C)
	case "Figure":
		parts, err := decodeParts(t.C, 3)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		caption, err := decodeCaption(parts[1])
		if err != nil {
			return nil, err
		}
		blocks, err := decodeBlockList(parts[2])
		if err != nil {
			return nil, err
		}
		return Figure{Attr: attr, Caption: caption, Blocks: blocks}, nil
	case "Div":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		blocks, err := decodeBlockList(parts[1])
		if err != nil {
			return nil, err
		}
		return Div{Attr: attr, Blocks: blocks}, nil
	}
	return nil, fmt.Errorf("unknown block tag %q", t.T)
}

func decodeInlines(raw []json.RawMessage) ([]Inline, error) {
	var inlines []Inline
	for _, r := range raw {
		inl, err := decodeInline(r)
		if err != nil {
			return nil, err
		}
		inlines = append(inlines, inl)
	}
	return inlines, nil
}

func decodeInlineList(data json.RawMessage) ([]Inline, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return decodeInlines(raw)
}

func decodeTarget(data json.RawMessage) (Target, error) {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return Target{}, err
	}
	if len(parts) != 2 {
		return Target{}, fmt.Errorf("malformed link target")
	}
	return Target{URL: parts[0], Title: parts[1]}, nil
}

func decodeInline(data json.RawMessage) (Inline, error) {
	var t rawTagged
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	switch t.T {
	case "Str":
		var text string
		if err := json.Unmarshal(t.C, &text); err != nil {
			return nil, err
		}
		return Str{Text: text}, nil
	case "Emph", "Underline", "Strong", "Strikeout", "Superscript", "Subscript", "SmallCaps":
		inlines, err := decodeInlineList(t.C)
		if err != nil {
			return nil, err
		}
		switch t.T {
		case "Emph":
			return Emph{Inlines: inlines}, nil
		case "Underline":
			return Underline{Inlines: inlines}, nil
		case "Strong":
			return Strong{Inlines: inlines}, nil
		case "Strikeout":
			return Strikeout{Inlines: inlines}, nil
		case "Superscript":
			return Superscript{Inlines: inlines}, nil
		case "Subscript":
			return Subscript{Inlines: inlines}, nil
		default:
			return SmallCaps{Inlines: inlines}, nil
		}
	case "Quoted":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		quoteName, err := decodeTag(parts[0])
		if err != nil {
			return nil, err
		}
		qt := SingleQuote
		if quoteName == "DoubleQuote" {
			qt = DoubleQuote
		}
		inlines, err := decodeInlineList(parts[1])
		if err != nil {
			return nil, err
		}
		return Quoted{Type: qt, Inlines: inlines}, nil
	case "Cite":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		var rawCitations []struct {
			ID      string            `json:"citationId"`
			Prefix  []json.RawMessage `json:"citationPrefix"`
			Suffix  []json.RawMessage `json:"citationSuffix"`
			Mode    rawTagged         `json:"citationMode"`
			NoteNum int               `json:"citationNoteNum"`
			Hash    int               `json:"citationHash"`
		}
		if err := json.Unmarshal(parts[0], &rawCitations); err != nil {
			return nil, err
		}
		var citations []Citation
		for _, rc := range rawCitations {
			prefix, err := decodeInlines(rc.Prefix)
			if err != nil {
				return nil, err
			}
			suffix, err := decodeInlines(rc.Suffix)
			if err != nil {
				return nil, err
			}
			citations = append(citations, Citation{
				ID: rc.ID, Prefix: prefix, Suffix: suffix,
				Mode: citationModeByName(rc.Mode.T), NoteNum: rc.NoteNum, Hash: rc.Hash,
			})
		}
		inlines, err := decodeInlineList(parts[1])
		if err != nil {
			return nil, err
		}
		return Cite{Citations: citations, Inlines: inlines}, nil
	case "Code":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		var text string
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, err
		}
		return Code{Attr: attr, Text: text}, nil
	case "Space":
		return Space{}, nil
	case "SoftBreak":
		return SoftBreak{}, nil
	case "LineBreak":
		return LineBreak{}, nil
	case "Math":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		mathName, err := decodeTag(parts[0])
		if err != nil {
			return nil, err
		}
		mt := DisplayMath
		if mathName == "InlineMath" {
			mt = InlineMath
		}
		var text string
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, err
		}
		return Math{Type: mt, Text: text}, nil
	case "RawInline":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		var format, text string
		if err := json.Unmarshal(parts[0], &format); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, err
		}
		return RawInline{Format: format, Text: text}, nil
	case "Link", "Image":
		parts, err := decodeParts(t.C, 3)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlineList(parts[1])
		if err != nil {
			return nil, err
		}
		target, err := decodeTarget(parts[2])
		if err != nil {
			return nil, err
		}
		if t.T == "Link" {
			return Link{Attr: attr, Inlines: inlines, Target: target}, nil
		}
		return Image{Attr: attr, Inlines: inlines, Target: target}, nil
	case "Note":
		blocks, err := decodeBlockList(t.C)
		if err != nil {
			return nil, err
		}
		return Note{Blocks: blocks}, nil
	case "Span":
		parts, err := decodeParts(t.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlineList(parts[1])
		if err != nil {
			return nil, err
		}
		return Span{Attr: attr, Inlines: inlines}, nil
	}
	return nil, fmt.Errorf("unknown inline tag %q", t.T)
}

func decodeCaption(data json.RawMessage) (Caption, error) {
	parts, err := decodeParts(data, 2)
	if err != nil {
		return Caption{}, err
	}
	var caption Caption
	if string(parts[0]) != "null" {
		caption.Short, err = decodeInlineList(parts[0])
		if err != nil {
			return Caption{}, err
		}
	}
	caption.Blocks, err = decodeBlockList(parts[1])
	if err != nil {
		return Caption{}, err
	}
	return caption, nil
}

func decodeRows(data json.RawMessage) ([]Row, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var rows []Row
	for _, r := range raw {
		parts, err := decodeParts(r, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		var rawCells []json.RawMessage
		if err := json.Unmarshal(parts[1], &rawCells); err != nil {
			return nil, err
		}
		row := Row{Attr: attr}
		for _, rc := range rawCells {
			cellParts, err := decodeParts(rc, 5)
			if err != nil {
				return nil, err
			}
			cell := Cell{}
			if cell.Attr, err = decodeAttr(cellParts[0]); err != nil {
				return nil, err
			}
			alignName, err := decodeTag(cellParts[1])
			if err != nil {
				return nil, err
			}
			cell.Align = alignmentByName(alignName)
			if err := json.Unmarshal(cellParts[2], &cell.RowSpan); err != nil {
				return nil, err
			}
			if err := json.Unmarshal(cellParts[3], &cell.ColSpan); err != nil {
				return nil, err
			}
			if cell.Blocks, err = decodeBlockList(cellParts[4]); err != nil {
				return nil, err
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeTable(data json.RawMessage) (Table, error) {
	parts, err := decodeParts(data, 6)
	if err != nil {
		return Table{}, err
	}
	var table Table
	if table.Attr, err = decodeAttr(parts[0]); err != nil {
		return Table{}, err
	}
	if table.Caption, err = decodeCaption(parts[1]); err != nil {
		return Table{}, err
	}
	var rawSpecs []json.RawMessage
	if err := json.Unmarshal(parts[2], &rawSpecs); err != nil {
		return Table{}, err
	}
	for _, rs := range rawSpecs {
		specParts, err := decodeParts(rs, 2)
		if err != nil {
			return Table{}, err
		}
		alignName, err := decodeTag(specParts[0])
		if err != nil {
			return Table{}, err
		}
		var widthTag rawTagged
		if err := json.Unmarshal(specParts[1], &widthTag); err != nil {
			return Table{}, err
		}
		spec := ColSpec{Align: alignmentByName(alignName)}
		if widthTag.T == "ColWidth" {
			spec.Width.Set = true
			if err := json.Unmarshal(widthTag.C, &spec.Width.Width); err != nil {
				return Table{}, err
			}
		}
		table.ColSpecs = append(table.ColSpecs, spec)
	}
	headParts, err := decodeParts(parts[3], 2)
	if err != nil {
		return Table{}, err
	}
	if table.Head.Attr, err = decodeAttr(headParts[0]); err != nil {
		return Table{}, err
	}
	if table.Head.Rows, err = decodeRows(headParts[1]); err != nil {
		return Table{}, err
	}
	var rawBodies []json.RawMessage
	if err := json.Unmarshal(parts[4], &rawBodies); err != nil {
		return Table{}, err
	}
	for _, rb := range rawBodies {
		bodyParts, err := decodeParts(rb, 4)
		if err != nil {
			return Table{}, err
		}
		var body TableBody
		if body.Attr, err = decodeAttr(bodyParts[0]); err != nil {
			return Table{}, err
		}
		if err := json.Unmarshal(bodyParts[1], &body.RowHeadColumns); err != nil {
			return Table{}, err
		}
		if body.Head, err = decodeRows(bodyParts[2]); err != nil {
			return Table{}, err
		}
		if body.Rows, err = decodeRows(bodyParts[3]); err != nil {
			return Table{}, err
		}
		table.Bodies = append(table.Bodies, body)
	}
	footParts, err := decodeParts(parts[5], 2)
	if err != nil {
		return Table{}, err
	}
	if table.Foot.Attr, err = decodeAttr(footParts[0]); err != nil {
		return Table{}, err
	}
	if table.Foot.Rows, err = decodeRows(footParts[1]); err != nil {
		return Table{}, err
	}
	return table, nil
}

func alignmentByName(name string) Alignment {
	for a, n := range alignmentNames {
		if n == name {
			return a
		}
	}
	return AlignDefault
}

func numberStyleByName(name string) ListNumberStyle {
	for s, n := range numberStyleNames {
		if n == name {
			return s
		}
	}
	return DefaultStyle
}

func numberDelimByName(name string) ListNumberDelim {
	for d, n := range numberDelimNames {
		if n == name {
			return d
		}
	}
	return DefaultDelim
}

func citationModeByName(name string) CitationMode {
	for m, n := range citationModeNames {
		if n == name {
			return m
		}
	}
	return NormalCitation
}
