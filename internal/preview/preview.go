/*
Package preview renders stroke glyphs to raster images.

Glyph outlines of stroke fonts are centre lines of strokes, not filled areas.
Every segment is therefore drawn as a thin band around its centre line, and
no implicit closing segments are ever added to open contours.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokefont/svgpath"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// tracer traces with key 'strokefont.preview'
func tracer() tracing.Trace {
	return tracing.Select("strokefont.preview")
}

// Glyph is a glyph to render, in font units (y axis pointing up).
type Glyph struct {
	Advance float64
	Path    svgpath.Path
}

// Options control the layout of a preview image. Zero values select defaults.
type Options struct {
	Size        int     // pixels per em, default 96
	UnitsPerEm  int     // default 1000
	Ascent      int     // distance of the baseline from the top of the em box, in font units, default 800
	StrokeWidth float64 // in pixels, default 2
	Margin      int     // in pixels, default 8
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 96
	}
	if o.UnitsPerEm <= 0 {
		o.UnitsPerEm = 1000
	}
	if o.Ascent <= 0 {
		o.Ascent = 800
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 2
	}
	if o.Margin < 0 {
		o.Margin = 0
	} else if o.Margin == 0 {
		o.Margin = 8
	}
	return o
}

// flattening steps for curve segments
const curveSteps = 16

// Render lays out glyphs left to right by their advance widths and draws
// their strokes black on white.
func Render(glyphs []Glyph, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	scale := float64(opts.Size) / float64(opts.UnitsPerEm)
	var total float64
	for _, g := range glyphs {
		total += g.Advance
	}
	width := 2*opts.Margin + int(total*scale+0.5)
	height := 2*opts.Margin + opts.Size
	if width < 1 {
		width = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)

	rast := vector.NewRasterizer(width, height)
	rast.DrawOp = draw.Over
	baseline := float64(opts.Margin) + float64(opts.Ascent)*scale
	penX := float64(opts.Margin)
	half := opts.StrokeWidth / 2
	for _, g := range glyphs {
		toImage := func(pt vec.Vec2) vec.Vec2 {
			return vec.Vec2{X: penX + pt.X*scale, Y: baseline - pt.Y*scale}
		}
		for _, seg := range g.Path {
			steps := curveSteps
			if seg.Kind == svgpath.Line {
				steps = 1
			}
			prev := toImage(seg.Start)
			for i := 1; i <= steps; i++ {
				p := toImage(seg.PointAt(float64(i) / float64(steps)))
				band(rast, prev, p, half)
				prev = p
			}
		}
		penX += g.Advance * scale
	}
	rast.Draw(img, img.Bounds(), image.Black, image.Point{})
	tracer().Debugf("rendered %d glyphs to %dx%d image", len(glyphs), width, height)
	return img
}

// band adds a rectangle of half-width hw around the line a→b. All bands have
// the same orientation, thus overlapping bands do not cancel out.
func band(rast *vector.Rasterizer, a, b vec.Vec2, hw float64) {
	d := b.Sub(a)
	if d.Length() == 0 {
		return
	}
	n := d.Normalize().Rot90().Mul(hw)
	p0, p1, p2, p3 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	rast.MoveTo(float32(p0.X), float32(p0.Y))
	rast.LineTo(float32(p1.X), float32(p1.Y))
	rast.LineTo(float32(p2.X), float32(p2.Y))
	rast.LineTo(float32(p3.X), float32(p3.Y))
	rast.ClosePath()
}

// WritePNG encodes img as PNG to outPath, creating parent directories as
// needed.
func WritePNG(outPath string, img image.Image) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return f.Close()
}
