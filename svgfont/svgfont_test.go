package svgfont

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strokefont/fonterr"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type FontTestEnviron struct {
	suite.Suite
	font *Font
}

// listen for 'go test' command --> run test methods
func TestFontFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strokefont.svgfont")
	defer teardown()
	suite.Run(t, new(FontTestEnviron))
}

// run once, before test suite methods
func (env *FontTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	font, err := Assemble(filepath.Join("testdata", "glyphs"), DefaultMetadata())
	env.Require().NoError(err, "cannot assemble test font")
	env.font = font
}

// --- Tests -----------------------------------------------------------------

func (env *FontTestEnviron) TestAssembleOrderAndBlanks() {
	// five sources, one of them on a blank table position
	env.Require().Len(env.font.Glyphs, 4)
	chars := []rune{}
	for _, g := range env.font.Glyphs {
		chars = append(chars, g.Char)
	}
	env.Equal([]rune{'A', 'À', '&', '"'}, chars, "glyphs must be emitted in file name order")
	env.Equal(480, env.font.Glyphs[0].Advance)
	env.Equal(500, env.font.Glyphs[1].Advance)
}

func (env *FontTestEnviron) TestAssembleJoinsFragments() {
	env.Equal("M 40,0 L 240,800 L 440,0 M 90,200 L 390,200", env.font.Glyphs[0].PathData)
	env.Equal("M 50,0 L 250,800 L 450,0 M 100,200 L 400,200 m 200,1000 l 100,-100",
		env.font.Glyphs[1].PathData, "fragments must be kept verbatim")
	env.Equal("M 80,800 L 80,600 M 170,800 L 170,600", env.font.Glyphs[3].PathData)
}

func (env *FontTestEnviron) TestFontDocument() {
	out := string(env.font.Bytes())
	env.True(strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`+"\n"))
	env.Contains(out, "Font name:               Norm Stroke\n")
	env.Contains(out, "A derivative of:         https://commons.wikimedia.org/wiki/File:ISO3098.svg\n")
	env.Contains(out, `<font id="NormStroke" horiz-adv-x="350" >`)
	env.Contains(out, "font-family=\"Norm Stroke\"\nunits-per-em=\"1000\"\n")
	env.Contains(out, `<missing-glyph horiz-adv-x="480" />`)
	env.Contains(out, `<glyph unicode=" " horiz-adv-x="480" />`)
	env.Contains(out, `<glyph unicode="A" horiz-adv-x="480" d="M 40,0 L 240,800 L 440,0 M 90,200 L 390,200" />`)
	env.Contains(out, `<glyph unicode="&amp;" horiz-adv-x="300" d="M 0,0 L 100,0 L 100,100 L 0,100 Z" />`)
	env.Contains(out, `<glyph unicode="&quot;" horiz-adv-x="250" `)
	env.True(strings.HasSuffix(out, "\n</font>\n</defs>\n</svg>\n"))
}

func (env *FontTestEnviron) TestReadBackAssembledFont() {
	doc, err := ReadDocument(bytes.NewReader(env.font.Bytes()))
	env.Require().NoError(err)
	glyphs := doc.Glyphs()
	env.Require().Len(glyphs, len(env.font.Glyphs)+1, "space glyph plus one entry per emitted glyph")
	env.Equal(" ", glyphs[0].Unicode)
	env.False(glyphs[0].HasPath)
	for i, g := range env.font.Glyphs {
		entry := glyphs[i+1]
		env.Equal(string(g.Char), entry.Unicode)
		env.Equal(g.PathData, entry.PathData)
		env.True(entry.HasPath)
	}
	var out bytes.Buffer
	_, err = doc.WriteTo(&out)
	env.Require().NoError(err)
	env.Equal(env.font.Bytes(), out.Bytes(), "unmodified document must be written back byte for byte")
}

func (env *FontTestEnviron) TestPseudoCloseAssembledFont() {
	orig := env.font.Bytes()
	doc, err := ReadDocument(bytes.NewReader(orig))
	env.Require().NoError(err)
	n, err := PseudoClose(doc)
	env.Require().NoError(err)
	env.Equal(1, n, "only the '&' glyph has a closed contour")
	glyphs := doc.Glyphs()
	env.Equal("M 0,0 L 100,0 L 100,100 L 0,100 L 0,1", glyphs[3].PathData)
	out := string(doc.Bytes())
	expected := strings.Replace(string(orig),
		`d="M 0,0 L 100,0 L 100,100 L 0,100 Z"`, `d="M 0,0 L 100,0 L 100,100 L 0,100 L 0,1"`, 1)
	env.Equal(expected, out, "only the path data of the '&' glyph may change")
	//
	again, err := ReadDocument(strings.NewReader(out))
	env.Require().NoError(err)
	n, err = PseudoClose(again)
	env.Require().NoError(err)
	env.Equal(0, n, "pseudo-closed contours are open")
}

// --- Plain tests -----------------------------------------------------------

func TestAssembleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strokefont.svgfont")
	defer teardown()
	//
	tests := []struct {
		dir  string
		kind fonterr.Kind
	}{
		{"duplicate", fonterr.Configuration},
		{"badname", fonterr.Configuration},
		{"badpath", fonterr.Parse},
		{"malformed", fonterr.Parse},
		{"does-not-exist", fonterr.Parse},
	}
	for _, tt := range tests {
		font, err := Assemble(filepath.Join("testdata", tt.dir), DefaultMetadata())
		if err == nil {
			t.Errorf("%s: expected error", tt.dir)
			continue
		}
		if font != nil {
			t.Errorf("%s: expected no partial font", tt.dir)
		}
		if !fonterr.IsKind(err, tt.kind) {
			t.Errorf("%s: expected %s error, got %v", tt.dir, tt.kind, err)
		}
		t.Logf("%s: %v", tt.dir, err)
	}
}

func TestAssembleRejectsBadMetadata(t *testing.T) {
	meta := DefaultMetadata()
	meta.UnitsPerEm = 0
	if _, err := Assemble(filepath.Join("testdata", "glyphs"), meta); !fonterr.IsKind(err, fonterr.Configuration) {
		t.Errorf("expected configuration error for units-per-em = 0, got %v", err)
	}
}

func TestMetadataFromConfig(t *testing.T) {
	conf := testconfig.Conf{
		KeyID:      "Narrow",
		KeyFamily:  "Norm Stroke Narrow",
		KeyAdvance: 300,
		KeyVersion: "",
	}
	m := MetadataFromConfig(conf)
	if m.ID != "Narrow" || m.Family != "Norm Stroke Narrow" || m.DefaultAdvance != 300 {
		t.Errorf("configured values not applied: %+v", m)
	}
	if m.UnitsPerEm != 1000 || m.Ascent != 800 {
		t.Errorf("expected defaults for unset keys, have %+v", m)
	}
	font := &Font{Meta: m}
	if out := string(font.Bytes()); strings.Contains(out, "Version:") {
		t.Errorf("empty metadata entries must be omitted")
	}
	if MetadataFromConfig(nil) != DefaultMetadata() {
		t.Errorf("nil configuration must yield default metadata")
	}
}

func TestPseudoCloseZeroLengthClosingSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strokefont.svgfont")
	defer teardown()
	//
	doc, err := ReadDocument(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><defs><font>
<glyph unicode="x" d="M 0,0 L 10,0 L 0,0 L 0,0"/>
</font></defs></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := PseudoClose(doc); !fonterr.IsKind(err, fonterr.Geometry) {
		t.Errorf("expected geometry error, got %v", err)
	}
}

func TestDocumentSplicesOnlyPathData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strokefont.svgfont")
	defer teardown()
	//
	input := `<?xml version="1.0"?>
<!-- hand-edited -->
<svg xmlns="http://www.w3.org/2000/svg" xmlns:x="urn:x">
  <glyph unicode='o'   x:d="keep" d = 'M0 0 L 10 0 L 10 10 L 0 10 z' horiz-adv-x="400"/>
  <x:glyph d="M 0,0 L 1,1 Z"/>
  <glyph unicode="-" d="M 0,0 L 5,0"></glyph>
  <glyph unicode=" "/>
</svg>
`
	doc, err := ReadDocument(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 3 {
		t.Fatalf("expected 3 glyphs in SVG namespace, have %d", doc.Len())
	}
	n, err := PseudoClose(doc)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 adjusted contour, got %d", n)
	}
	expected := strings.Replace(input, `d = 'M0 0 L 10 0 L 10 10 L 0 10 z'`,
		`d = 'M 0,0 L 10,0 L 10,10 L 0,10 L 0,1'`, 1)
	if got := string(doc.Bytes()); got != expected {
		t.Errorf("unexpected document:\n%s\nwant:\n%s", got, expected)
	}
	if err := doc.SetPathData(2, "M 0,0"); err == nil {
		t.Errorf("expected error setting path data of glyph without d attribute")
	}
}

func TestFindAttrValue(t *testing.T) {
	tag := []byte(`<glyph unicode="d" dx='1' d="M 0,0 L 1,0" />`)
	s, e, ok := findAttrValue(tag, "d")
	if !ok || string(tag[s:e]) != "M 0,0 L 1,0" {
		t.Errorf("d not found correctly: %v %q", ok, tag[s:e])
	}
	if _, _, ok := findAttrValue([]byte(`<glyph unicode="x"/>`), "d"); ok {
		t.Errorf("expected no d attribute")
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"&", "&amp;"},
		{"<", "&lt;"},
		{">", "&gt;"},
		{`"`, "&quot;"},
		{"'", "&apos;"},
		{`a<"b">&'c'`, "a&lt;&quot;b&quot;&gt;&amp;&apos;c&apos;"},
		{"M 0,0 L 1,1", "M 0,0 L 1,1"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := escapeAttr(tt.in); got != tt.want {
			t.Errorf("escapeAttr(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestDocumentFontFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strokefont.svgfont")
	defer teardown()
	//
	meta := DefaultMetadata()
	meta.UnitsPerEm, meta.Ascent, meta.Descent, meta.DefaultAdvance = 2048, 1600, 448, 500
	font, err := Assemble(filepath.Join("testdata", "glyphs"), meta)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := ReadDocument(bytes.NewReader(font.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	want := FontFace{UnitsPerEm: 2048, Ascent: 1600, Descent: 448, DefaultAdvance: 500}
	if face := doc.Face(); face != want {
		t.Errorf("font face = %+v; want %+v", face, want)
	}
	//
	bare := `<svg xmlns="http://www.w3.org/2000/svg"><glyph unicode="-" d="M 0,0 L 5,0"/></svg>`
	doc, err = ReadDocument(strings.NewReader(bare))
	if err != nil {
		t.Fatal(err)
	}
	if face := doc.Face(); face != (FontFace{}) {
		t.Errorf("expected zero font face for document without <font-face>, have %+v", face)
	}
	//
	malformed := `<svg xmlns="http://www.w3.org/2000/svg"><font-face units-per-em="1k"/></svg>`
	if _, err := ReadDocument(strings.NewReader(malformed)); !fonterr.IsKind(err, fonterr.Parse) {
		t.Errorf("expected parse error for malformed units-per-em, got %v", err)
	}
}
