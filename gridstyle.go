/*
Package gridstyle computes class names and inline styles for responsive grid
layouts and renders them as HTML nodes.

A grid consists of rows and columns. Rows hand a gutter (horizontal and
vertical spacing) down to the columns they construct; columns translate
span/order/offset/push/pull settings and per-breakpoint overrides into class
tokens, which a companion stylesheet (package grid/gridcss) gives meaning to.

The work is done in package grid. This package holds a couple of small
generic helpers shared by the sub-packages.

Status

Early draft, the API may change frequently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gridstyle

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple. Grid gutters are pairs of (horizontal, vertical) spacing.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Matches is true if both components of p and other are equal.
func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return p.Left == other.Left && p.Right == other.Right
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// ---------------------------------------------------------------------------

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
