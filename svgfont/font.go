package svgfont

import (
	"bytes"
	"fmt"
	"io"
)

// Glyph is a single <glyph> entry of an assembled font.
type Glyph struct {
	Char     rune
	Advance  int    // horizontal advance in font units
	PathData string // SVG path data, fragments of the source joined by a space
}

// Font is an assembled SVG font. Glyphs are kept in emission order.
type Font struct {
	Meta   Metadata
	Glyphs []Glyph
}

// Bytes returns the complete SVG font document.
func (f *Font) Bytes() []byte {
	var buf bytes.Buffer
	f.writeHeader(&buf)
	for _, g := range f.Glyphs {
		fmt.Fprintf(&buf, "<glyph unicode=\"%s\" horiz-adv-x=\"%d\" d=\"%s\" />\n",
			escapeAttr(string(g.Char)), g.Advance, escapeAttr(g.PathData))
	}
	buf.WriteString("\n</font>\n</defs>\n</svg>\n")
	return buf.Bytes()
}

// WriteTo writes the SVG font document to w.
func (f *Font) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

func (f *Font) writeHeader(buf *bytes.Buffer) {
	m := f.Meta
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	buf.WriteString(`<svg xmlns="` + SVGNamespace + `" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1">` + "\n")
	buf.WriteString("<metadata>\n")
	for _, entry := range [][2]string{
		{"Font name:", m.Name},
		{"License:", m.License},
		{"A derivative of:", m.Derivative},
		{"Version:", m.Version},
	} {
		if entry[1] != "" {
			fmt.Fprintf(buf, "%-25s%s\n", entry[0], escapeAttr(entry[1]))
		}
	}
	buf.WriteString("</metadata>\n<defs>\n")
	fmt.Fprintf(buf, "<font id=\"%s\" horiz-adv-x=\"%d\" >\n", escapeAttr(m.ID), m.DefaultAdvance)
	fmt.Fprintf(buf, "<font-face\nfont-family=\"%s\"\nunits-per-em=\"%d\"\nascent=\"%d\"\ndescent=\"%d\"\ncap-height=\"%d\"\nx-height=\"%d\"\n/>\n",
		escapeAttr(m.Family), m.UnitsPerEm, m.Ascent, m.Descent, m.CapHeight, m.XHeight)
	fmt.Fprintf(buf, "<missing-glyph horiz-adv-x=\"%d\" />\n", m.MissingAdvance)
	fmt.Fprintf(buf, "<glyph unicode=\" \" horiz-adv-x=\"%d\" />\n", m.SpaceAdvance)
}
