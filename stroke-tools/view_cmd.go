package main

import (
	"strings"

	"github.com/npillmayer/strokefont"
	"github.com/npillmayer/strokefont/internal/preview"
	"github.com/npillmayer/strokefont/svgfont"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runViewCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	outPath := mustFlagString(flags, "output")
	size := mustFlagInt(flags, "size")
	if size <= 0 {
		fatalf("--size must be > 0")
	}
	outlines, face := mustLoadOutlines(fontPath)
	text := optionalFlag(flags, "text")
	glyphs := selectGlyphs(outlines, text)
	if len(glyphs) == 0 {
		fatalf("nothing to render")
	}
	img := preview.Render(glyphs, preview.Options{
		Size:       size,
		UnitsPerEm: face.UnitsPerEm,
		Ascent:     face.Ascent,
	})
	if err := preview.WritePNG(outPath, img); err != nil {
		fatalf("render failed: %v", err)
	}
	pterm.Success.Printf("wrote %s (glyphs=%d)\n", outPath, len(glyphs))
}

// selectGlyphs picks the outlines for the characters of text, in order. An
// empty text selects every glyph of the font.
func selectGlyphs(outlines []strokefont.Outline, text string) []preview.Glyph {
	var glyphs []preview.Glyph
	if text == "" {
		for _, o := range outlines {
			glyphs = append(glyphs, preview.Glyph{Advance: float64(o.Advance), Path: o.Path})
		}
		return glyphs
	}
	for _, r := range text {
		o, ok := strokefont.Lookup(outlines, string(r))
		if !ok {
			pterm.Error.Printf("font has no glyph for %q\n", r)
			continue
		}
		glyphs = append(glyphs, preview.Glyph{Advance: float64(o.Advance), Path: o.Path})
	}
	return glyphs
}

// mustLoadOutlines loads the glyph outlines of a font document together with
// its font-wide dimensions. Dimensions the document does not declare are
// taken from the Norm Stroke defaults.
func mustLoadOutlines(fontPath string) ([]strokefont.Outline, svgfont.FontFace) {
	doc, err := strokefont.LoadDocument(fontPath)
	if err != nil {
		fatalf("%v", err)
	}
	face := withDefaults(doc.Face(), svgfont.DefaultMetadata())
	outlines, err := strokefont.Outlines(doc, face.DefaultAdvance)
	if err != nil {
		fatalf("%s: %v", fontPath, err)
	}
	return outlines, face
}

func withDefaults(face svgfont.FontFace, meta svgfont.Metadata) svgfont.FontFace {
	if face.UnitsPerEm <= 0 {
		face.UnitsPerEm = meta.UnitsPerEm
	}
	if face.Ascent <= 0 {
		face.Ascent = meta.Ascent
	}
	if face.Descent <= 0 {
		face.Descent = meta.Descent
	}
	if face.DefaultAdvance <= 0 {
		face.DefaultAdvance = meta.DefaultAdvance
	}
	return face
}
