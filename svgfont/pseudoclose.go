package svgfont

import (
	"fmt"
	"strings"

	"github.com/npillmayer/strokefont/svgpath"
)

// PseudoClose pseudo-closes the closed contours of every glyph of doc, see
// svgpath.PseudoClose. Glyphs without closed contours keep their path data
// byte for byte. It returns the number of contours changed.
//
// doc is modified in place. If an error is returned, doc may have been
// partially modified and should be discarded.
func PseudoClose(doc *Document) (int, error) {
	total := 0
	for i, g := range doc.glyphs {
		if !g.HasPath || strings.TrimSpace(g.PathData) == "" {
			continue
		}
		d, n, err := svgpath.PseudoCloseData(g.PathData)
		if err != nil {
			return total, fmt.Errorf("glyph #%d %q: %w", i, g.Unicode, err)
		}
		if n == 0 {
			continue
		}
		if err := doc.SetPathData(i, d); err != nil {
			return total, err
		}
		tracer().Debugf("glyph %q: %d contours pseudo-closed", g.Unicode, n)
		total += n
	}
	tracer().Infof("pseudo-closed %d contours in %d glyphs", total, len(doc.glyphs))
	return total, nil
}
