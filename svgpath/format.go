package svgpath

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// String serializes a path to SVG path data, using absolute commands only.
//
// A move command is written for the first segment and for every segment not
// starting at the end point of its predecessor. Segment kinds and control
// points are written as they are. A 'Z' is never written: closed contours
// carry their closing segment explicitly.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i == 0 || p[i-1].End != seg.Start {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("M ")
			writePoint(&b, seg.Start)
		}
		switch seg.Kind {
		case Quad:
			b.WriteString(" Q ")
			writePoint(&b, seg.Ctrl[0])
		case Cubic:
			b.WriteString(" C ")
			writePoint(&b, seg.Ctrl[0])
			b.WriteByte(' ')
			writePoint(&b, seg.Ctrl[1])
		default:
			b.WriteString(" L")
		}
		b.WriteByte(' ')
		writePoint(&b, seg.End)
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt vec.Vec2) {
	b.WriteString(formatNumber(pt.X))
	b.WriteByte(',')
	b.WriteString(formatNumber(pt.Y))
}

func fmtPoint(pt vec.Vec2) string {
	return formatNumber(pt.X) + "," + formatNumber(pt.Y)
}

// formatNumber writes the shortest decimal representation which parses back
// to v. Exponent notation is used only for magnitudes below 1e-6 or from 1e21
// on.
func formatNumber(v float64) string {
	if v == 0 {
		return "0" // also for -0
	}
	if a := math.Abs(v); a < 1e-6 || a >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
