package svgfont

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/strokefont/fonterr"
)

// GlyphEntry is a <glyph> element of a font document.
type GlyphEntry struct {
	Unicode  string // value of the unicode attribute
	Advance  string // value of the horiz-adv-x attribute, may be empty
	PathData string // value of the d attribute
	HasPath  bool   // true if the element carries a d attribute
	// byte span of the raw d attribute value within the document
	valStart, valEnd int
}

// FontFace holds the font-wide dimensions declared by a font document.
// Values the document does not declare are 0.
type FontFace struct {
	UnitsPerEm     int // units-per-em of the <font-face>
	Ascent         int
	Descent        int
	DefaultAdvance int // horiz-adv-x of the <font> element
}

// Document is an SVG font document which keeps its original bytes.
// Path data of glyphs may be replaced, everything else is written back
// unchanged.
type Document struct {
	raw    []byte
	face   FontFace
	glyphs []GlyphEntry
	edits  map[int]string
}

const docSource = "font document"

// ReadDocument reads an SVG font document. Glyphs are the <glyph> elements in
// the SVG namespace, at any depth, in document order.
func ReadDocument(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fonterr.WrapParse(docSource, "cannot read", err)
	}
	doc := &Document{raw: raw, edits: make(map[int]string)}
	dec := xml.NewDecoder(bytes.NewReader(raw))
	for {
		start := int(dec.InputOffset())
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fonterr.WrapParse(docSource, "malformed SVG", err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Space != SVGNamespace {
			continue
		}
		switch el.Name.Local {
		case "font":
			err = intAttrs(el, start, map[string]*int{"horiz-adv-x": &doc.face.DefaultAdvance})
		case "font-face":
			err = intAttrs(el, start, map[string]*int{
				"units-per-em": &doc.face.UnitsPerEm,
				"ascent":       &doc.face.Ascent,
				"descent":      &doc.face.Descent,
			})
		}
		if err != nil {
			return nil, err
		}
		if el.Name.Local != "glyph" {
			continue
		}
		end := int(dec.InputOffset())
		g, err := doc.glyphEntry(el, start, end)
		if err != nil {
			return nil, err
		}
		doc.glyphs = append(doc.glyphs, g)
	}
	tracer().Debugf("font document has %d glyphs", len(doc.glyphs))
	return doc, nil
}

// intAttrs parses the integer attributes of el named by the keys of dst.
func intAttrs(el xml.StartElement, offset int, dst map[string]*int) error {
	for _, a := range el.Attr {
		if a.Name.Space != "" {
			continue
		}
		p, ok := dst[a.Name.Local]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(a.Value))
		if err != nil {
			return fonterr.ParseAt(docSource, offset, "<%s> has invalid %s %q",
				el.Name.Local, a.Name.Local, a.Value)
		}
		*p = n
	}
	return nil
}

func (doc *Document) glyphEntry(el xml.StartElement, start, end int) (GlyphEntry, error) {
	g := GlyphEntry{}
	for _, a := range el.Attr {
		if a.Name.Space != "" {
			continue
		}
		switch a.Name.Local {
		case "unicode":
			g.Unicode = a.Value
		case "horiz-adv-x":
			g.Advance = a.Value
		case "d":
			g.PathData = a.Value
			g.HasPath = true
		}
	}
	if !g.HasPath {
		return g, nil
	}
	tag := doc.raw[start:end]
	if len(tag) < 2 || tag[0] != '<' || tag[len(tag)-1] != '>' {
		return g, fonterr.ParseAt(docSource, start, "cannot locate raw <glyph> tag")
	}
	vs, ve, ok := findAttrValue(tag, "d")
	if !ok {
		return g, fonterr.ParseAt(docSource, start, "cannot locate path data of <glyph>")
	}
	g.valStart, g.valEnd = start+vs, start+ve
	return g, nil
}

// Face returns the font-wide dimensions of the document.
func (doc *Document) Face() FontFace {
	return doc.face
}

// Len returns the number of glyphs of the document.
func (doc *Document) Len() int {
	return len(doc.glyphs)
}

// Glyphs returns the glyphs of the document, with path data replacements
// applied.
func (doc *Document) Glyphs() []GlyphEntry {
	glyphs := make([]GlyphEntry, len(doc.glyphs))
	copy(glyphs, doc.glyphs)
	for i, d := range doc.edits {
		glyphs[i].PathData = d
	}
	return glyphs
}

// SetPathData replaces the path data of glyph i. Only glyphs which already
// carry path data may be changed.
func (doc *Document) SetPathData(i int, d string) error {
	if i < 0 || i >= len(doc.glyphs) {
		return fmt.Errorf("glyph index %d out of range", i)
	}
	if !doc.glyphs[i].HasPath {
		return fmt.Errorf("glyph #%d (%q) has no path data", i, doc.glyphs[i].Unicode)
	}
	doc.edits[i] = d
	return nil
}

// Bytes returns the document with all path data replacements applied.
func (doc *Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(len(doc.raw))
	pos := 0
	for i, g := range doc.glyphs {
		d, ok := doc.edits[i]
		if !ok {
			continue
		}
		buf.Write(doc.raw[pos:g.valStart])
		buf.WriteString(escapeAttr(d))
		pos = g.valEnd
	}
	buf.Write(doc.raw[pos:])
	return buf.Bytes()
}

// WriteTo writes the document to w.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(doc.Bytes())
	return int64(n), err
}

// findAttrValue locates the value of attribute name within a raw start tag,
// which must be well-formed. It returns the byte span of the value, excluding
// the quotes.
func findAttrValue(tag []byte, name string) (int, int, bool) {
	i := 1
	for i < len(tag) && !isSpace(tag[i]) && tag[i] != '>' && tag[i] != '/' {
		i++ // element name
	}
	for {
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) || tag[i] == '>' || tag[i] == '/' {
			return 0, 0, false
		}
		nameStart := i
		for i < len(tag) && !isSpace(tag[i]) && tag[i] != '=' {
			i++
		}
		attr := string(tag[nameStart:i])
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) || tag[i] != '=' {
			return 0, 0, false
		}
		i++
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) || (tag[i] != '"' && tag[i] != '\'') {
			return 0, 0, false
		}
		q := tag[i]
		i++
		valStart := i
		for i < len(tag) && tag[i] != q {
			i++
		}
		if i >= len(tag) {
			return 0, 0, false
		}
		if attr == name {
			return valStart, i, true
		}
		i++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
