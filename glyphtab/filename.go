package glyphtab

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/npillmayer/strokefont/fonterr"
)

// SourceName is the metadata encoded in the file name of a glyph source.
type SourceName struct {
	TableKey string // row of the character table, e.g. "l.0"
	Index    int    // position within the row
	Advance  int    // horizontal advance in font units
}

func (sn SourceName) String() string {
	return fmt.Sprintf("%s[%d] (adv=%d)", sn.TableKey, sn.Index, sn.Advance)
}

// Glyph source names have the form
//
//	<key><sep><index>_<advance>.svg
//
// where key is a lower-case letter, a dot and a digit, sep is any single
// character other than an underscore, a digit or a path separator, index has
// one or two (possibly zero-padded) digits, and advance is a decimal integer.
var sourceNamePattern = regexp.MustCompile(`^([a-z]\.[0-9])[^_0-9/\\]([0-9]{1,2})_([0-9]+)\.svg$`)

// ParseSourceName parses the file name (without directory) of a glyph source.
// Names not conforming to the naming scheme are configuration errors.
func ParseSourceName(name string) (SourceName, error) {
	m := sourceNamePattern.FindStringSubmatch(name)
	if m == nil {
		return SourceName{}, fonterr.Configurationf(name,
			"malformed glyph source name, expected <key><sep><index>_<advance>.svg")
	}
	index, err := strconv.Atoi(m[2])
	if err != nil { // cannot happen for up to 2 digits
		return SourceName{}, fonterr.Configurationf(name, "malformed glyph index %q", m[2])
	}
	adv, err := strconv.Atoi(m[3])
	if err != nil {
		return SourceName{}, fonterr.Configurationf(name, "malformed advance width %q", m[3])
	}
	return SourceName{TableKey: m[1], Index: index, Advance: adv}, nil
}

// Resolve parses a glyph source name and looks up its character in table t.
func (t *Table) Resolve(name string) (SourceName, rune, error) {
	sn, err := ParseSourceName(name)
	if err != nil {
		return sn, 0, err
	}
	r, err := t.Lookup(sn.TableKey, sn.Index)
	if err != nil {
		return sn, 0, fmt.Errorf("%s: %w", name, err)
	}
	return sn, r, nil
}
