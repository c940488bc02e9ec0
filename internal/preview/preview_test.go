package preview

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strokefont/svgpath"
)

func parse(t *testing.T, d string) svgpath.Path {
	t.Helper()
	p, err := svgpath.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRenderOpenContour(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strokefont.preview")
	defer teardown()
	//
	// a 'U' shape: the gap at the top must not be closed and filled
	glyphs := []Glyph{{Advance: 480, Path: parse(t, "M 100,800 L 100,0 L 400,0 L 400,800")}}
	img := Render(glyphs, Options{Size: 100})
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 64 || h != 116 {
		t.Fatalf("expected 64x116 image, have %dx%d", w, h)
	}
	// scale 0.1, margin 8, baseline at y = 88
	if c := img.RGBAAt(18, 48); c.R > 128 {
		t.Errorf("expected left stroke at (18,48), have %v", c)
	}
	if c := img.RGBAAt(33, 48); c.R != 255 {
		t.Errorf("expected inside of open contour to stay white, have %v", c)
	}
	if c := img.RGBAAt(33, 88); c.R > 128 {
		t.Errorf("expected bottom stroke on baseline at (33,88), have %v", c)
	}
}

func TestRenderAdvancesPen(t *testing.T) {
	vbar := parse(t, "M 50,0 L 50,800")
	img := Render([]Glyph{{Advance: 100, Path: vbar}, {Advance: 100, Path: vbar}}, Options{Size: 100, Margin: 10})
	// strokes at x = 10+5 and x = 10+10+5
	for _, x := range []int{15, 25} {
		if c := img.RGBAAt(x, 50); c.R > 128 {
			t.Errorf("expected stroke at x=%d, have %v", x, c)
		}
	}
	if c := img.RGBAAt(20, 50); c.R != 255 {
		t.Errorf("expected gap between glyphs at x=20, have %v", c)
	}
}

func TestWritePNG(t *testing.T) {
	img := Render(nil, Options{})
	out := filepath.Join(t.TempDir(), "sub", "empty.png")
	if err := WritePNG(out, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("cannot decode written PNG: %v", err)
	}
}
