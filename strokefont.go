/*
Package strokefont builds SVG stroke fonts from per-glyph SVG sources.

We will stick to the following definitions:

▪︎ A "glyph source" is an SVG file holding the centre lines of the strokes of a
single character. The character is encoded in the file name, see package
glyphtab.

▪︎ A "stroke font" is an SVG font document with one <glyph> element per
character. Its outlines are open paths which a renderer is expected to stroke,
not to fill.

▪︎ A "pseudo-closed" contour is a closed contour whose final segment has been
shortened by one font unit, so that renderers which fill paths or add closing
segments leave it alone.

Package strokefont offers file-level operations on top of packages svgfont and
svgpath, which are used by the stroke-tools command.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package strokefont

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokefont/fonterr"
	"github.com/npillmayer/strokefont/svgfont"
)

// tracer writes to trace with key 'strokefont'
func tracer() tracing.Trace {
	return tracing.Select("strokefont")
}

// BuildFont assembles the glyph sources in srcDir into a font document and
// writes it to outPath. The output directory is created if necessary. Nothing
// is written if assembling fails.
//
// BuildFont returns the number of glyphs written.
func BuildFont(srcDir, outPath string, meta svgfont.Metadata) (int, error) {
	font, err := svgfont.Assemble(srcDir, meta)
	if err != nil {
		return 0, err
	}
	if err := writeFile(outPath, font.Bytes()); err != nil {
		return 0, err
	}
	tracer().Infof("wrote %d glyphs to %s", len(font.Glyphs), outPath)
	return len(font.Glyphs), nil
}

// LoadDocument reads a font document from a file.
func LoadDocument(path string) (*svgfont.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fonterr.WrapParse(path, "cannot read font document", err)
	}
	doc, err := svgfont.ReadDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("loaded font document %s with %d glyphs", path, doc.Len())
	return doc, nil
}

// PseudoCloseFile reads the font document at inPath, pseudo-closes the closed
// contours of all of its glyphs and writes the result to outPath. Nothing is
// written if an error occurs.
//
// PseudoCloseFile returns the number of contours adjusted.
func PseudoCloseFile(inPath, outPath string) (int, error) {
	doc, err := LoadDocument(inPath)
	if err != nil {
		return 0, err
	}
	n, err := svgfont.PseudoClose(doc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", inPath, err)
	}
	if err := writeFile(outPath, doc.Bytes()); err != nil {
		return 0, err
	}
	tracer().Infof("pseudo-closed %d contours, wrote %s", n, outPath)
	return n, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	return nil
}
