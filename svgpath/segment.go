package svgpath

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// SegmentKind is the drawing primitive of a segment.
type SegmentKind uint8

const (
	Line  SegmentKind = iota // straight line
	Quad                     // quadratic Bézier curve, one control point
	Cubic                    // cubic Bézier curve, two control points
)

func (k SegmentKind) String() string {
	switch k {
	case Line:
		return "line"
	case Quad:
		return "quad"
	case Cubic:
		return "cubic"
	}
	return fmt.Sprintf("SegmentKind(%d)", uint8(k))
}

// Segment is a single drawing primitive with explicit start and end point,
// given in font design units. Ctrl holds the control points of curves: one
// for quadratic, two for cubic segments. Control points are never altered by
// this package.
type Segment struct {
	Kind  SegmentKind
	Start vec.Vec2
	Ctrl  [2]vec.Vec2
	End   vec.Vec2
}

// LineSeg creates a straight line segment.
func LineSeg(start, end vec.Vec2) Segment {
	return Segment{Kind: Line, Start: start, End: end}
}

// QuadSeg creates a quadratic Bézier segment.
func QuadSeg(start, ctrl, end vec.Vec2) Segment {
	return Segment{Kind: Quad, Start: start, Ctrl: [2]vec.Vec2{ctrl}, End: end}
}

// CubicSeg creates a cubic Bézier segment.
func CubicSeg(start, c1, c2, end vec.Vec2) Segment {
	return Segment{Kind: Cubic, Start: start, Ctrl: [2]vec.Vec2{c1, c2}, End: end}
}

// PointAt evaluates the segment at parameter t ∈ [0,1].
func (s Segment) PointAt(t float64) vec.Vec2 {
	u := 1 - t
	switch s.Kind {
	case Quad:
		return s.Start.Mul(u * u).Add(s.Ctrl[0].Mul(2 * u * t)).Add(s.End.Mul(t * t))
	case Cubic:
		return s.Start.Mul(u * u * u).
			Add(s.Ctrl[0].Mul(3 * u * u * t)).
			Add(s.Ctrl[1].Mul(3 * u * t * t)).
			Add(s.End.Mul(t * t * t))
	}
	return s.Start.Mul(u).Add(s.End.Mul(t))
}

func (s Segment) String() string {
	switch s.Kind {
	case Quad:
		return fmt.Sprintf("quad (%s) ctrl (%s) → (%s)", fmtPoint(s.Start), fmtPoint(s.Ctrl[0]), fmtPoint(s.End))
	case Cubic:
		return fmt.Sprintf("cubic (%s) ctrl (%s) (%s) → (%s)", fmtPoint(s.Start), fmtPoint(s.Ctrl[0]),
			fmtPoint(s.Ctrl[1]), fmtPoint(s.End))
	}
	return fmt.Sprintf("line (%s) → (%s)", fmtPoint(s.Start), fmtPoint(s.End))
}

// Path is an ordered sequence of segments.
type Path []Segment

// Contour is a maximal run of segments of a path where each segment starts at
// the end point of its predecessor.
type Contour []Segment

// IsClosed is true if the contour ends exactly where it starts.
// An empty contour is not closed.
func (c Contour) IsClosed() bool {
	if len(c) == 0 {
		return false
	}
	return c[0].Start == c[len(c)-1].End
}
