// Package tint is the drawing core of the Tint UI toolkit.
//
// # Overview
//
// tint provides two things to the toolkit's platform backends:
//
//   - A backend-neutral vector path model (Path) built from move, line,
//     cubic Bezier, and close commands, with exact conversion algorithms
//     for quadratic curves, canvas-style corner arcs, general elliptical
//     arcs, and SVG endpoint-parameterized arcs.
//   - A hybrid rasterizer for the primitive shapes widgets draw most
//     (rounded rectangles, ellipses, lines). It combines exact signed
//     distance fields with boundary-only supersampling, so anti-aliasing
//     cost scales with a shape's perimeter rather than its area.
//
// # Quick Start
//
//	import "github.com/tintui/tint"
//
//	dst := tint.NewPixmap(200, 120)
//	r := tint.NewRenderer()
//	r.FillRoundedRect(dst, 10, 10, 180, 100, 12, 12, tint.BGRA{B: 40, G: 40, R: 220, A: 255})
//	dst.SavePNG("button.png")
//
// Arbitrary paths are not rasterized here: backends consume Path's
// command list directly through their own native tessellation. The hybrid
// fast path covers only the fixed primitive-shape vocabulary.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
//
// # Concurrency
//
// Paths follow a single-writer-then-freeze discipline: mutate freely
// before Freeze, read freely from any goroutine after. The SDF types in
// package sdf are immutable values. A Renderer (and its surface pool) is
// owned by a single rendering goroutine per destination, matching the
// one-thread-per-window model of the platform layer.
package tint
