/*
Package svgpath models SVG path data as a sequence of segments with explicit
start and end points, and implements pseudo-closing of contours.

Path data is parsed into line, quadratic and cubic segments. Moves are not
represented as segments: a path is split into contours wherever the end point
of a segment differs from the start point of its successor. Serializing a path
re-inserts a move command at every such break. Arcs are not supported.

# Pseudo-closing

Single-stroke glyphs are drawn by renderers which do not draw the implicit
closing segment of a sub-path. A contour which returns exactly to its starting
point will then show a seam at the join. Pseudo-closing shortens the final
segment of every closed contour by one font unit along its own direction, so
that start and end point are nearly, but not exactly, coincident:

	delta := last.End.Sub(last.Start).Normalize()
	last.End = last.End.Sub(delta)

Pseudo-closing is not idempotent in the usual sense: a second application finds
no closed contours and leaves the path unchanged.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package svgpath

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'strokefont.svgpath'
func tracer() tracing.Trace {
	return tracing.Select("strokefont.svgpath")
}
