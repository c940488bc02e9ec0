/*
Package svgfont assembles SVG fonts from per-glyph SVG sources and
post-processes the glyph outlines of SVG font documents.

The assembler reads a directory of glyph sources (see package glyphtab for
the file naming scheme) and emits a font document with one <glyph> entry per
character, in file name order. The pseudo-closer rewrites the path data of the
glyphs of an existing font document, leaving every other byte of the document
untouched.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package svgfont

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strokefont.svgfont'
func tracer() tracing.Trace {
	return tracing.Select("strokefont.svgfont")
}

// SVGNamespace is the XML namespace of SVG elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeAttr escapes a string for use as an XML attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
