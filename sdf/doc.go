// Package sdf provides signed distance fields for the primitive shapes
// the renderer draws: rounded rectangles, ellipses, and thick line
// segments.
//
// Every type is an immutable value evaluating distances in a shape-local,
// origin-centered frame. Negative distances are inside the shape; the
// magnitude is the Euclidean distance to the boundary. There is no shared
// state anywhere in the package, so values may be evaluated concurrently
// without restriction.
package sdf
