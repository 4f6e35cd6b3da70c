package tint

import "strconv"

// ParseSVGPath parses the SVG `d`-attribute mini-language into a Path.
//
// The supported commands are M/m, L/l, H/h, V/v, C/c, S/s, Q/q, T/t, A/a
// and Z/z, including implicit repetition of the previous command across
// consecutive coordinate groups (with repeated M becoming L, per the SVG
// specification).
//
// Parsing is deliberately lenient: unrecognized command letters are
// skipped and malformed numeric tokens parse as 0, so arbitrary input
// never fails — it may just produce wrong-but-plausible geometry. The
// returned path is unfrozen.
func ParseSVGPath(d string) *Path {
	p := &svgPathParser{
		path: NewPath(),
		data: d,
	}
	p.run()
	return p.path
}

type svgPathParser struct {
	path *Path
	data string
	pos  int

	// Last control points, for S/T reflection. Reset whenever an
	// intervening non-smooth command occurs.
	lastCubic Point
	hasCubic  bool
	lastQuad  Point
	hasQuad   bool
}

func (p *svgPathParser) run() {
	var cmd byte
	for p.pos < len(p.data) {
		p.skipSeparators()
		if p.pos >= len(p.data) {
			return
		}
		c := p.data[p.pos]
		switch {
		case isSVGCommand(c):
			cmd = c
			p.pos++
		case !isNumberStart(c) || cmd == 0:
			// Unknown letter, or coordinates before any command.
			p.pos++
			continue
		}
		p.apply(cmd)
		// A coordinate group after a moveto is an implicit lineto.
		// Closepath takes no arguments and never repeats, so stray
		// numbers after it are junk to skip, not a reason to loop.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		case 'Z', 'z':
			cmd = 0
		}
	}
}

func (p *svgPathParser) apply(cmd byte) {
	cur := p.path.current
	smooth := false

	switch cmd {
	case 'M':
		p.path.moveTo(p.number(), p.number())
	case 'm':
		x, y := p.number(), p.number()
		p.path.moveTo(cur.X+x, cur.Y+y)
	case 'L':
		p.path.lineTo(p.number(), p.number())
	case 'l':
		x, y := p.number(), p.number()
		p.path.lineTo(cur.X+x, cur.Y+y)
	case 'H':
		p.path.lineTo(p.number(), cur.Y)
	case 'h':
		p.path.lineTo(cur.X+p.number(), cur.Y)
	case 'V':
		p.path.lineTo(cur.X, p.number())
	case 'v':
		p.path.lineTo(cur.X, cur.Y+p.number())
	case 'C':
		c1x, c1y := p.number(), p.number()
		c2x, c2y := p.number(), p.number()
		x, y := p.number(), p.number()
		p.path.bezierTo(c1x, c1y, c2x, c2y, x, y)
		p.setCubic(Pt(c2x, c2y))
		smooth = true
	case 'c':
		c1x, c1y := cur.X+p.number(), cur.Y+p.number()
		c2x, c2y := cur.X+p.number(), cur.Y+p.number()
		x, y := cur.X+p.number(), cur.Y+p.number()
		p.path.bezierTo(c1x, c1y, c2x, c2y, x, y)
		p.setCubic(Pt(c2x, c2y))
		smooth = true
	case 'S', 's':
		c1 := p.reflectedCubic(cur)
		c2x, c2y := p.number(), p.number()
		x, y := p.number(), p.number()
		if cmd == 's' {
			c2x, c2y = cur.X+c2x, cur.Y+c2y
			x, y = cur.X+x, cur.Y+y
		}
		p.path.bezierTo(c1.X, c1.Y, c2x, c2y, x, y)
		p.setCubic(Pt(c2x, c2y))
		smooth = true
	case 'Q':
		qx, qy := p.number(), p.number()
		x, y := p.number(), p.number()
		p.path.quadTo(qx, qy, x, y)
		p.setQuad(Pt(qx, qy))
		smooth = true
	case 'q':
		qx, qy := cur.X+p.number(), cur.Y+p.number()
		x, y := cur.X+p.number(), cur.Y+p.number()
		p.path.quadTo(qx, qy, x, y)
		p.setQuad(Pt(qx, qy))
		smooth = true
	case 'T', 't':
		q := p.reflectedQuad(cur)
		x, y := p.number(), p.number()
		if cmd == 't' {
			x, y = cur.X+x, cur.Y+y
		}
		p.path.quadTo(q.X, q.Y, x, y)
		p.setQuad(q)
		smooth = true
	case 'A', 'a':
		rx, ry := p.number(), p.number()
		rot := p.number()
		large := p.flag()
		sweep := p.flag()
		x, y := p.number(), p.number()
		if cmd == 'a' {
			x, y = cur.X+x, cur.Y+y
		}
		p.path.svgArcTo(rx, ry, rot, large, sweep, x, y)
	case 'Z', 'z':
		p.path.closePath()
	}

	if !smooth {
		p.hasCubic = false
		p.hasQuad = false
	}
}

func (p *svgPathParser) setCubic(ctrl Point) {
	p.lastCubic = ctrl
	p.hasCubic = true
	p.hasQuad = false
}

func (p *svgPathParser) setQuad(ctrl Point) {
	p.lastQuad = ctrl
	p.hasQuad = true
	p.hasCubic = false
}

// reflectedCubic returns the last cubic control point reflected about the
// current point, or the current point itself if the previous command was
// not a cubic.
func (p *svgPathParser) reflectedCubic(cur Point) Point {
	if !p.hasCubic {
		return cur
	}
	return Pt(2*cur.X-p.lastCubic.X, 2*cur.Y-p.lastCubic.Y)
}

func (p *svgPathParser) reflectedQuad(cur Point) Point {
	if !p.hasQuad {
		return cur
	}
	return Pt(2*cur.X-p.lastQuad.X, 2*cur.Y-p.lastQuad.Y)
}

func (p *svgPathParser) skipSeparators() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			p.pos++
		default:
			return
		}
	}
}

// number scans one numeric token. A token that cannot start a number
// consumes nothing; a malformed token parses as 0. Either way the caller
// gets a usable value and the scan keeps moving.
func (p *svgPathParser) number() float64 {
	p.skipSeparators()
	start := p.pos
	n := len(p.data)

	if p.pos < n && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
		p.pos++
	}
	digitsStart := p.pos
	for p.pos < n && isDigit(p.data[p.pos]) {
		p.pos++
	}
	if p.pos < n && p.data[p.pos] == '.' {
		p.pos++
		for p.pos < n && isDigit(p.data[p.pos]) {
			p.pos++
		}
	}
	if p.pos == digitsStart {
		// No digits at all: not a number. Leave a bare sign consumed so
		// the scan cannot stall, but report 0.
		return 0
	}
	if p.pos < n && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		expStart := p.pos
		p.pos++
		if p.pos < n && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		if p.pos < n && isDigit(p.data[p.pos]) {
			for p.pos < n && isDigit(p.data[p.pos]) {
				p.pos++
			}
		} else {
			// "12e" or "12ex": the e belongs to something else.
			p.pos = expStart
		}
	}

	v, err := strconv.ParseFloat(p.data[start:p.pos], 64)
	if err != nil {
		return 0
	}
	return v
}

// flag scans an arc flag. SVG allows flags to be packed against the
// following number ("a1 1 0 11 10,5"), so a leading 0 or 1 is consumed
// as a single character.
func (p *svgPathParser) flag() bool {
	p.skipSeparators()
	if p.pos < len(p.data) {
		switch p.data[p.pos] {
		case '0':
			p.pos++
			return false
		case '1':
			p.pos++
			return true
		}
	}
	return p.number() != 0
}

func isSVGCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
