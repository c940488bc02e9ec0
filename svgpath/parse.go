package svgpath

import (
	"strconv"

	"github.com/npillmayer/strokefont/fonterr"
	"seehuhn.de/go/geom/vec"
)

const errSource = "path data"

// Parse parses SVG path data into a path.
//
// Supported are the commands M, L, H, V, C, S, Q, T and Z, in absolute
// and relative form, including implicit repetition of commands. A 'Z' adds a
// straight segment back to the start of the sub-path, unless the current point
// already equals that start point. Empty path data yields an empty path.
//
// Syntax errors and unsupported commands are reported as fonterr.Parse errors.
func Parse(d string) (Path, error) {
	p := &parser{sc: scanner{s: d}}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.path, nil
}

type parser struct {
	sc       scanner
	path     Path
	cur      vec.Vec2 // current point
	start    vec.Vec2 // start of current sub-path
	moved    bool     // seen an initial move command
	reflect  vec.Vec2 // last control point, for S and T
	lastCmd  byte     // last command, in lower case
	cmdStart int      // offset of the command currently parsed
}

func (p *parser) parse() error {
	var cmd byte
	for {
		p.sc.skipSeparators()
		if p.sc.eof() {
			return nil
		}
		p.cmdStart = p.sc.pos
		c := p.sc.peek()
		if isCommand(c) {
			cmd = c
			p.sc.pos++
		} else if !p.sc.startsNumber() || cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return fonterr.ParseAt(errSource, p.sc.pos, "unexpected character %q", rune(c))
		}
		// else: implicit repetition of the previous command
		if !p.moved && cmd != 'M' && cmd != 'm' {
			return fonterr.ParseAt(errSource, p.cmdStart, "path data must start with a move command")
		}
		if err := p.command(cmd); err != nil {
			return err
		}
		// a moveto followed by coordinate pairs continues as lineto
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

func (p *parser) command(cmd byte) error {
	rel := cmd >= 'a' && cmd <= 'z'
	lower := cmd | 0x20
	var origin vec.Vec2
	if rel {
		origin = p.cur
	}
	switch lower {
	case 'm':
		pt, err := p.point(origin)
		if err != nil {
			return err
		}
		p.cur, p.start, p.moved = pt, pt, true
	case 'l':
		pt, err := p.point(origin)
		if err != nil {
			return err
		}
		p.append(LineSeg(p.cur, pt), pt)
	case 'h':
		x, err := p.number()
		if err != nil {
			return err
		}
		pt := vec.Vec2{X: x + origin.X, Y: p.cur.Y}
		p.append(LineSeg(p.cur, pt), pt)
	case 'v':
		y, err := p.number()
		if err != nil {
			return err
		}
		pt := vec.Vec2{X: p.cur.X, Y: y + origin.Y}
		p.append(LineSeg(p.cur, pt), pt)
	case 'c':
		pts, err := p.points(origin, 3)
		if err != nil {
			return err
		}
		p.append(CubicSeg(p.cur, pts[0], pts[1], pts[2]), pts[1])
	case 's':
		pts, err := p.points(origin, 2)
		if err != nil {
			return err
		}
		c1 := p.cur
		if p.lastCmd == 'c' || p.lastCmd == 's' {
			c1 = p.cur.Mul(2).Sub(p.reflect)
		}
		p.append(CubicSeg(p.cur, c1, pts[0], pts[1]), pts[0])
	case 'q':
		pts, err := p.points(origin, 2)
		if err != nil {
			return err
		}
		p.append(QuadSeg(p.cur, pts[0], pts[1]), pts[0])
	case 't':
		pt, err := p.point(origin)
		if err != nil {
			return err
		}
		ctrl := p.cur
		if p.lastCmd == 'q' || p.lastCmd == 't' {
			ctrl = p.cur.Mul(2).Sub(p.reflect)
		}
		p.append(QuadSeg(p.cur, ctrl, pt), ctrl)
	case 'z':
		if p.cur != p.start {
			p.path = append(p.path, LineSeg(p.cur, p.start))
		}
		p.cur = p.start
	case 'a':
		return fonterr.ParseAt(errSource, p.cmdStart, "arc commands are not supported")
	default:
		return fonterr.ParseAt(errSource, p.cmdStart, "unknown path command %q", rune(cmd))
	}
	p.lastCmd = lower
	return nil
}

// append adds a segment, advances the current point and remembers ctrl as the
// reflection point for a subsequent smooth curve command.
func (p *parser) append(seg Segment, ctrl vec.Vec2) {
	p.path = append(p.path, seg)
	p.cur = seg.End
	p.reflect = ctrl
}

func (p *parser) number() (float64, error) {
	p.sc.skipSeparators()
	f, ok := p.sc.number()
	if !ok {
		return 0, fonterr.ParseAt(errSource, p.sc.pos, "number expected")
	}
	return f, nil
}

func (p *parser) point(origin vec.Vec2) (vec.Vec2, error) {
	x, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x + origin.X, Y: y + origin.Y}, nil
}

func (p *parser) points(origin vec.Vec2, n int) ([]vec.Vec2, error) {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		pt, err := p.point(origin)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}

// --- Scanner ---------------------------------------------------------------

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.s)
}

func (sc *scanner) peek() byte {
	return sc.s[sc.pos]
}

func (sc *scanner) skipSeparators() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *scanner) startsNumber() bool {
	if sc.eof() {
		return false
	}
	c := sc.peek()
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}

// number scans a floating point number. SVG allows numbers to follow each other
// without separator if unambiguous, e.g. "10-5" or "1.5.5".
func (sc *scanner) number() (float64, bool) {
	s, i := sc.s, sc.pos
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(s[sc.pos:i], 64)
	if err != nil {
		return 0, false
	}
	sc.pos = i
	return f, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isCommand(c byte) bool {
	switch c | 0x20 {
	case 'm', 'l', 'h', 'v', 'c', 's', 'q', 't', 'z', 'a':
		return true
	}
	return false
}
