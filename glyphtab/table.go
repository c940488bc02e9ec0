/*
Package glyphtab maps glyph source files to characters.

Glyph sources are named after a row of the character table and a position
within that row, e.g. "l.0-05_480.svg" for the sixth character of row "l.0",
drawn with an advance width of 480 font units. Rows contain blank positions,
which are placeholders for "no glyph assigned".

Characters which are only possible with combining diacritics (U̇, u̇, y̋) are
not part of the table.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphtab

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokefont/fonterr"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'strokefont.glyphtab'
func tracer() tracing.Trace {
	return tracing.Select("strokefont.glyphtab")
}

// Blank is the placeholder character of the table. Glyph sources mapped to
// Blank are parsed, but not emitted.
const Blank = ' '

// Table is an immutable mapping from table keys to rows of characters.
type Table struct {
	rows map[string][]rune
}

// NewTable creates a table from rows of characters. Rows are copied.
// It returns an error if a row contains characters which are not stable
// under NFC normalization or are combining marks.
func NewTable(rows map[string]string) (*Table, error) {
	t := &Table{rows: make(map[string][]rune, len(rows))}
	for key, row := range rows {
		runes := []rune(row)
		for i, r := range runes {
			s := string(r)
			if !norm.NFC.IsNormalString(s) || unicode.Is(unicode.Mn, r) {
				return nil, fmt.Errorf("table row %q, position %d: character %U is not a single composed code point", key, i, r)
			}
		}
		t.rows[key] = runes
	}
	return t, nil
}

// Lookup returns the character at position index of the row for key.
// An unknown key or an index out of range is a configuration error.
func (t *Table) Lookup(key string, index int) (rune, error) {
	row, ok := t.rows[key]
	if !ok {
		return 0, fonterr.Configurationf(key, "unknown character table key")
	}
	if index < 0 || index >= len(row) {
		return 0, fonterr.Configurationf(key, "glyph index %d out of range [0…%d]", index, len(row)-1)
	}
	tracer().Debugf("table %s[%d] = %q", key, index, row[index])
	return row[index], nil
}

// Keys returns the table keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Row returns a copy of the row for key.
func (t *Table) Row(key string) ([]rune, bool) {
	row, ok := t.rows[key]
	if !ok {
		return nil, false
	}
	return append([]rune(nil), row...), true
}

// Default is the character table of the Norm Stroke font.
var Default = mustTable(map[string]string{
	"l.0": "AÀÁÂÃÄÅĂĀĄÆBCĆĈČĊÇDĎÐEÈÉÊËĚĒĖȨFGĜĞĠĢHĤĦIÌÍÎĨÏǏĪİ",
	"l.1": "ĮJĴKĶLĹĽĻMNŃÑŇŅOÒÓÔÕÖŐŌØPQRŔŘŖSŚŜŠŞTŤŢȾUÙÚÛŨÜŮŰŬ",
	"l.2": "Ū ŲVWXYÝZŹŽŻaàáâãäåăāæbcćĉčçdďðeèéêëěėȩfgĝğġhĥħi",
	"l.3": "ìíîĩïīįjkķlĺľļłmnńñňņŋoòóôõöőōøºœpþqrŕřŗsŝšştťţⱦ",
	"l.4": "uùúũüůűū ųvwxyý zß01234567 89+-×/±=≡÷<>≤≥«»()[]{",
	"l.5": "}%∞√≈~!?&'\",;.:\\_∑∫∡⊳⊲≠#≙□∅  $¢£¥₧@©®℄↷ ⋂",
	"g.0": "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩαβγδεζηθικλμνξοπρστυφχψω",
	"e.0": "*", // extra glyphs
})

func mustTable(rows map[string]string) *Table {
	t, err := NewTable(rows)
	if err != nil {
		panic(err)
	}
	return t
}
