package strokefont

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/strokefont/fonterr"
	"github.com/npillmayer/strokefont/svgfont"
	"github.com/npillmayer/strokefont/svgpath"
)

// Outline is a glyph of a font document with its path data parsed.
type Outline struct {
	Char    string // value of the unicode attribute
	Advance int
	Path    svgpath.Path
}

// Contours returns the contours of the outline.
func (o Outline) Contours() []svgpath.Contour {
	return svgpath.Contours(o.Path)
}

// Outlines parses the path data of every glyph of doc, in document order.
// Glyphs without a horiz-adv-x attribute get defaultAdvance.
func Outlines(doc *svgfont.Document, defaultAdvance int) ([]Outline, error) {
	entries := doc.Glyphs()
	outlines := make([]Outline, 0, len(entries))
	for _, g := range entries {
		o := Outline{Char: g.Unicode, Advance: defaultAdvance}
		if adv := strings.TrimSpace(g.Advance); adv != "" {
			a, err := strconv.Atoi(adv)
			if err != nil {
				return nil, fonterr.Parsef("font document", "glyph %q: malformed horiz-adv-x %q", g.Unicode, adv)
			}
			o.Advance = a
		}
		if g.HasPath {
			p, err := svgpath.Parse(g.PathData)
			if err != nil {
				return nil, fmt.Errorf("glyph %q: %w", g.Unicode, err)
			}
			o.Path = p
		}
		outlines = append(outlines, o)
	}
	return outlines, nil
}

// Lookup finds the first outline for a character.
func Lookup(outlines []Outline, char string) (Outline, bool) {
	for _, o := range outlines {
		if o.Char == char {
			return o, true
		}
	}
	return Outline{}, false
}
