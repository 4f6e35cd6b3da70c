package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSVGPath_Triangle(t *testing.T) {
	p := ParseSVGPath("M0,0 L10,0 L10,10 Z")
	cmds := p.Commands()
	require.Len(t, cmds, 4)
	assert.Equal(t, MoveTo{Point: Pt(0, 0)}, cmds[0])
	assert.Equal(t, LineTo{Point: Pt(10, 0)}, cmds[1])
	assert.Equal(t, LineTo{Point: Pt(10, 10)}, cmds[2])
	assert.Equal(t, Close{}, cmds[3])
	assert.False(t, p.IsFrozen())
}

func TestParseSVGPath_RelativeRect(t *testing.T) {
	// h/v shorthand builds the same geometry as the rect factory.
	p := ParseSVGPath("M10 10 h 20 v 20 h -20 Z")
	want := FromRect(10, 10, 20, 20).Commands()
	assert.Equal(t, want, p.Commands())
}

func TestParseSVGPath_ImplicitRepetition(t *testing.T) {
	// Extra coordinate groups repeat the previous command; after a
	// moveto they become linetos.
	p := ParseSVGPath("M0 0 10 0 10 10")
	cmds := p.Commands()
	require.Len(t, cmds, 3)
	assert.IsType(t, MoveTo{}, cmds[0])
	assert.Equal(t, LineTo{Point: Pt(10, 0)}, cmds[1])
	assert.Equal(t, LineTo{Point: Pt(10, 10)}, cmds[2])

	rel := ParseSVGPath("m5 5 10 0 0 10")
	cmds = rel.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, LineTo{Point: Pt(15, 5)}, cmds[1])
	assert.Equal(t, LineTo{Point: Pt(15, 15)}, cmds[2])
}

func TestParseSVGPath_CubicAndSmooth(t *testing.T) {
	p := ParseSVGPath("M0 0 C 10 0 20 10 30 10 S 50 20 60 10")
	cmds := p.Commands()
	require.Len(t, cmds, 3)

	first := cmds[1].(BezierTo)
	assert.Equal(t, Pt(10, 0), first.Control1)
	assert.Equal(t, Pt(20, 10), first.Control2)
	assert.Equal(t, Pt(30, 10), first.Point)

	// S reflects the previous second control point about the current
	// point: 2*(30,10) - (20,10) = (40,10).
	second := cmds[2].(BezierTo)
	assert.Equal(t, Pt(40, 10), second.Control1)
	assert.Equal(t, Pt(50, 20), second.Control2)
	assert.Equal(t, Pt(60, 10), second.Point)
}

func TestParseSVGPath_SmoothWithoutPredecessor(t *testing.T) {
	// S after a non-cubic command uses the current point as the first
	// control point.
	p := ParseSVGPath("M5 5 S 10 0 20 5")
	bez := p.Commands()[1].(BezierTo)
	assert.Equal(t, Pt(5, 5), bez.Control1)
}

func TestParseSVGPath_QuadAndSmooth(t *testing.T) {
	p := ParseSVGPath("M0 0 Q 5 10 10 0 T 20 0")
	cmds := p.Commands()
	require.Len(t, cmds, 3)

	// Quadratics arrive degree-elevated; reconstruct the implied control
	// point from the first cubic control: c1 = start + 2/3*(q - start).
	first := cmds[1].(BezierTo)
	assert.InDelta(t, 10.0/3, first.Control1.X, 1e-9)
	assert.InDelta(t, 20.0/3, first.Control1.Y, 1e-9)

	// T reflects the quadratic control (5,10) about (10,0) to (15,-10);
	// elevated: c1 = (10,0) + 2/3*((15,-10) - (10,0)).
	second := cmds[2].(BezierTo)
	assert.InDelta(t, 10+10.0/3, second.Control1.X, 1e-9)
	assert.InDelta(t, -20.0/3, second.Control1.Y, 1e-9)
	assert.Equal(t, Pt(20, 0), second.Point)
}

func TestParseSVGPath_Arc(t *testing.T) {
	p := ParseSVGPath("M15 10 A5 5 0 0 1 10 15")
	require.False(t, p.IsEmpty())
	end := p.CurrentPoint()
	assert.InDelta(t, 10, end.X, 1e-6)
	assert.InDelta(t, 15, end.Y, 1e-6)

	// Packed flags, as emitted by many SVG optimizers.
	packed := ParseSVGPath("M15 10 a5 5 0 01-5 5")
	end = packed.CurrentPoint()
	assert.InDelta(t, 10, end.X, 1e-6)
	assert.InDelta(t, 15, end.Y, 1e-6)
}

func TestParseSVGPath_Numbers(t *testing.T) {
	p := ParseSVGPath("M-1.5.5 L1e2,2.5E-1")
	cmds := p.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, Pt(-1.5, 0.5), cmds[0].(MoveTo).Point)
	assert.Equal(t, Pt(100, 0.25), cmds[1].(LineTo).Point)
}

func TestParseSVGPath_Lenient(t *testing.T) {
	tests := []struct {
		name string
		d    string
	}{
		{"empty", ""},
		{"junk", "not a path at all"},
		{"unknown command", "M0 0 X 5 5 L10 10"},
		{"missing coordinates", "M0 0 L10"},
		{"bare signs", "M+ - L5 5"},
		{"numbers before command", "5 5 M0 0"},
		{"trailing garbage", "M0 0 L10 10 @@@"},
		{"numbers after closepath", "M0 0 L10 10 Z 5 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Lenient parsing never panics and never fails; malformed
			// numbers read as 0.
			p := ParseSVGPath(tt.d)
			require.NotNil(t, p)
		})
	}

	// A malformed token parses as 0, not an error.
	p := ParseSVGPath("M0 0 L10")
	cmds := p.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, Pt(10, 0), cmds[1].(LineTo).Point)

	// Unknown letters are skipped, the rest still parses.
	p = ParseSVGPath("M0 0 X 5 5 L10 10")
	last := p.CurrentPoint()
	assert.Equal(t, Pt(10, 10), last)
}

func TestParseSVGPath_ClosepathDoesNotRepeat(t *testing.T) {
	// Z takes no arguments, so coordinates after it are skipped rather
	// than treated as an implicit repetition; exactly one Close lands in
	// the command list and parsing terminates.
	p := ParseSVGPath("M0 0 L10 10 Z 5 5")
	cmds := p.Commands()
	require.Len(t, cmds, 3)
	assert.IsType(t, Close{}, cmds[2])

	// A real command after the stray coordinates still parses.
	q := ParseSVGPath("M0 0 Z 9 9 L5 5")
	assert.Equal(t, Pt(5, 5), q.CurrentPoint())
}
