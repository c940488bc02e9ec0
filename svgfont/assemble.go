package svgfont

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/strokefont/fonterr"
	"github.com/npillmayer/strokefont/glyphtab"
)

// Assemble builds a font from the glyph sources in dir, using the default
// character table. See AssembleWithTable.
func Assemble(dir string, meta Metadata) (*Font, error) {
	return AssembleWithTable(dir, glyphtab.Default, meta)
}

// AssembleWithTable builds a font from the glyph sources in dir.
//
// Sources are processed in lexicographic order of their file names, and
// glyphs are emitted in that order. Sources mapping to the blank placeholder
// are parsed but not emitted. Two sources mapping to the same character are a
// configuration error. Sub-directories of dir are ignored.
//
// Every error is fatal: no partial font is returned.
func AssembleWithTable(dir string, table *glyphtab.Table, meta Metadata) (*Font, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir) // sorted by file name
	if err != nil {
		return nil, fonterr.WrapParse(dir, "cannot list glyph sources", err)
	}
	font := &Font{Meta: meta}
	defined := make(map[rune]string)
	for _, entry := range entries {
		if entry.IsDir() {
			tracer().Debugf("skipping directory %s", entry.Name())
			continue
		}
		src, err := ReadSource(filepath.Join(dir, entry.Name()), table)
		if err != nil {
			return nil, err
		}
		if src.Char == glyphtab.Blank {
			tracer().Debugf("%s is a blank position, skipped", src.File)
			continue
		}
		if other, dup := defined[src.Char]; dup {
			return nil, fonterr.Configurationf(src.File,
				"character %q already defined by %s", src.Char, other)
		}
		defined[src.Char] = src.File
		font.Glyphs = append(font.Glyphs, Glyph{
			Char:     src.Char,
			Advance:  src.Name.Advance,
			PathData: strings.Join(src.Fragments, " "),
		})
		tracer().Debugf("%s -> %q, %d fragments", src.File, src.Char, len(src.Fragments))
	}
	tracer().Infof("assembled %d glyphs from %s", len(font.Glyphs), dir)
	return font, nil
}
