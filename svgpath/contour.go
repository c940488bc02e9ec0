package svgpath

import (
	"github.com/npillmayer/strokefont/fonterr"
)

// Contours partitions a path into maximal contours. A new contour starts at
// the first segment and at every segment whose start point is not exactly
// equal to the end point of the previous segment.
//
// Contours do not share memory with the path.
func Contours(p Path) []Contour {
	var contours []Contour
	for i, seg := range p {
		if i == 0 || p[i-1].End != seg.Start {
			contours = append(contours, Contour{seg})
			continue
		}
		last := len(contours) - 1
		contours[last] = append(contours[last], seg)
	}
	return contours
}

// Join concatenates contours to a path, preserving their order.
func Join(contours []Contour) Path {
	var p Path
	for _, c := range contours {
		p = append(p, c...)
	}
	return p
}

// PseudoClose shortens the final segment of every closed contour of a path by
// one unit along the segment's direction. Open contours are left untouched.
// It returns the new path and the number of contours adjusted; the input path
// is not modified.
//
// A closed contour ending in a zero-length segment has no direction to shorten
// along; this is reported as a fonterr.Geometry error.
func PseudoClose(p Path) (Path, int, error) {
	contours := Contours(p)
	adjusted := 0
	for i, c := range contours {
		if !c.IsClosed() {
			continue
		}
		last := &c[len(c)-1]
		delta := last.End.Sub(last.Start)
		if delta.Length() == 0 {
			return nil, 0, fonterr.Geometryf(errSource,
				"closed contour #%d ends in zero-length segment at (%s)", i, fmtPoint(last.End))
		}
		end := last.End.Sub(delta.Normalize())
		tracer().Debugf("pseudo-closing contour #%d: end (%s) → (%s)", i, fmtPoint(last.End), fmtPoint(end))
		last.End = end
		adjusted++
	}
	return Join(contours), adjusted, nil
}

// PseudoCloseData parses path data, pseudo-closes it and serializes the
// result. Empty path data is returned unchanged.
func PseudoCloseData(d string) (string, int, error) {
	p, err := Parse(d)
	if err != nil {
		return "", 0, err
	}
	if len(p) == 0 {
		return d, 0, nil
	}
	closed, n, err := PseudoClose(p)
	if err != nil {
		return "", 0, err
	}
	return closed.String(), n, nil
}
