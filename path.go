package tint

import (
	"errors"
	"fmt"
	"math"
)

// FillRule determines which regions of a self-intersecting path are filled.
type FillRule int

const (
	// FillNonZero fills regions with a nonzero winding number.
	FillNonZero FillRule = iota
	// FillEvenOdd fills regions crossed an odd number of times.
	FillEvenOdd
)

// ErrFrozenPath is returned by every mutator called after Freeze.
// It signals a programming-contract violation, not a data error.
var ErrFrozenPath = errors.New("tint: path is frozen")

// PathCommand represents a single command in a path.
type PathCommand interface {
	isPathCommand()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathCommand() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathCommand() {}

// BezierTo draws a cubic Bezier curve.
type BezierTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (BezierTo) isPathCommand() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathCommand() {}

// Path is the canonical, backend-neutral vector path representation.
//
// A Path is built through its mutators and then optionally frozen.
// Freezing is one-way: it makes the path safe for unrestricted concurrent
// reads and lets backends cache compiled geometry against it. Every
// mutator fails with [ErrFrozenPath] once the path is frozen.
type Path struct {
	commands []PathCommand
	fillRule FillRule
	frozen   bool

	start      Point // start of current subpath
	current    Point
	hasCurrent bool
}

// NewPath creates a new empty path with the NonZero fill rule.
func NewPath() *Path {
	return &Path{
		commands: make([]PathCommand, 0, 16),
	}
}

// Commands returns the path's command sequence.
// The returned slice must not be modified.
func (p *Path) Commands() []PathCommand {
	return p.commands
}

// FillRule returns the path's fill rule.
func (p *Path) FillRule() FillRule {
	return p.fillRule
}

// SetFillRule sets the path's fill rule.
func (p *Path) SetFillRule(r FillRule) error {
	if p.frozen {
		return fmt.Errorf("SetFillRule: %w", ErrFrozenPath)
	}
	p.fillRule = r
	return nil
}

// IsEmpty reports whether the path contains no commands.
func (p *Path) IsEmpty() bool {
	return len(p.commands) == 0
}

// IsFrozen reports whether the path has been frozen.
func (p *Path) IsFrozen() bool {
	return p.frozen
}

// Freeze makes the path immutable. Freeze is idempotent; after the first
// call every mutator fails with [ErrFrozenPath] and the path may be read
// concurrently from any goroutine.
func (p *Path) Freeze() {
	p.frozen = true
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint reports whether the path has a current point, i.e.
// whether any command has established one.
func (p *Path) HasCurrentPoint() bool {
	return p.hasCurrent
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) error {
	if p.frozen {
		return fmt.Errorf("MoveTo: %w", ErrFrozenPath)
	}
	p.moveTo(x, y)
	return nil
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) error {
	if p.frozen {
		return fmt.Errorf("LineTo: %w", ErrFrozenPath)
	}
	p.lineTo(x, y)
	return nil
}

// BezierTo draws a cubic Bezier curve from the current point to (x, y)
// with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) BezierTo(c1x, c1y, c2x, c2y, x, y float64) error {
	if p.frozen {
		return fmt.Errorf("BezierTo: %w", ErrFrozenPath)
	}
	p.bezierTo(c1x, c1y, c2x, c2y, x, y)
	return nil
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() error {
	if p.frozen {
		return fmt.Errorf("Close: %w", ErrFrozenPath)
	}
	p.closePath()
	return nil
}

// Unchecked mutators shared by the arc emitters, the shape factories, and
// the SVG parser, all of which operate on paths they own before freezing.

func (p *Path) moveTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasCurrent = true
}

func (p *Path) lineTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, LineTo{Point: pt})
	p.current = pt
	p.hasCurrent = true
}

func (p *Path) bezierTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, BezierTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
	p.hasCurrent = true
}

func (p *Path) closePath() {
	p.commands = append(p.commands, Close{})
	p.current = p.start
}

// Clone creates an unfrozen deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.commands = make([]PathCommand, len(p.commands))
	copy(result.commands, p.commands)
	result.fillRule = p.fillRule
	result.start = p.start
	result.current = p.current
	result.hasCurrent = p.hasCurrent
	return result
}

// Transform returns a new unfrozen path with every point transformed by m.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	result.fillRule = p.fillRule
	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			pt := m.TransformPoint(c.Point)
			result.moveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(c.Point)
			result.lineTo(pt.X, pt.Y)
		case BezierTo:
			c1 := m.TransformPoint(c.Control1)
			c2 := m.TransformPoint(c.Control2)
			pt := m.TransformPoint(c.Point)
			result.bezierTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.closePath()
		}
	}
	return result
}

// Bounds returns the control-point bounding box of the path. The true
// curve bounds are contained in it but may be smaller. The second result
// is false for an empty path.
func (p *Path) Bounds() (min, max Point, ok bool) {
	min = Pt(math.Inf(1), math.Inf(1))
	max = Pt(math.Inf(-1), math.Inf(-1))
	grow := func(pt Point) {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
		ok = true
	}
	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			grow(c.Point)
		case LineTo:
			grow(c.Point)
		case BezierTo:
			grow(c.Control1)
			grow(c.Control2)
			grow(c.Point)
		}
	}
	if !ok {
		return Point{}, Point{}, false
	}
	return min, max, true
}
