package svgfont

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/strokefont/fonterr"
	"github.com/npillmayer/strokefont/glyphtab"
	"github.com/npillmayer/strokefont/svgpath"
)

// Source is a parsed glyph source file.
type Source struct {
	File      string // file name without directory
	Name      glyphtab.SourceName
	Char      rune
	Fragments []string // path data of the drawing elements, in document order
}

// sourceDoc captures the immediate children of a glyph source's root
// element together with their attributes.
type sourceDoc struct {
	XMLName  xml.Name
	Children []sourceElement `xml:",any"`
}

type sourceElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

// ReadSource reads the glyph source at path. The character is resolved from
// the file name using table. The first child element of the root is a
// bounding frame and is skipped; every following child must carry path data.
func ReadSource(path string, table *glyphtab.Table) (*Source, error) {
	name := filepath.Base(path)
	sn, char, err := table.Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fonterr.WrapParse(name, "cannot read glyph source", err)
	}
	var doc sourceDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fonterr.WrapParse(name, "malformed SVG", err)
	}
	src := &Source{File: name, Name: sn, Char: char}
	if len(doc.Children) == 0 {
		tracer().Debugf("%s: no child elements", name)
		return src, nil
	}
	for i, child := range doc.Children[1:] {
		d, ok := pathData(child.Attrs)
		if !ok {
			return nil, fonterr.Parsef(name, "element #%d <%s> has no path data", i+2, child.XMLName.Local)
		}
		if _, err := svgpath.Parse(d); err != nil {
			return nil, fmt.Errorf("%s: element #%d <%s>: %w", name, i+2, child.XMLName.Local, err)
		}
		src.Fragments = append(src.Fragments, d)
	}
	return src, nil
}

func pathData(attrs []xml.Attr) (string, bool) {
	for _, a := range attrs {
		if a.Name.Space == "" && a.Name.Local == "d" {
			return a.Value, true
		}
	}
	return "", false
}
