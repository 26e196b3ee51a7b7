package grid

import (
	"math"

	"github.com/npillmayer/gridstyle"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Row is a grid row. Its only job towards columns is to supply the gutter:
// columns created with Row.Col carry it.
type Row struct {
	conf   Config
	gutter Gutter
}

// NewRow creates a row with a horizontal and a vertical gutter, in pixels.
// Negative gutters, NaN and ±Inf are treated as 0.
func NewRow(conf Config, horizontal, vertical float64) *Row {
	if !validGutter(horizontal) || !validGutter(vertical) {
		tracer().Infof("grid: clamping invalid gutter (%g, %g) to 0", horizontal, vertical)
		horizontal, vertical = clamp(horizontal), clamp(vertical)
	}
	return &Row{conf: conf, gutter: gridstyle.P(horizontal, vertical)}
}

func validGutter(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1) // false for NaN, too
}

func clamp(x float64) float64 {
	if !validGutter(x) {
		return 0
	}
	return x
}

// Gutter returns the gutter of a row.
func (r *Row) Gutter() Gutter {
	return r.gutter
}

// Col creates a column inheriting the row's gutter.
func (r *Row) Col(opts ...ColOption) *Col {
	return newCol(r.conf, r.gutter, opts)
}

// ClassName returns the value for the class attribute of a row.
func (r *Row) ClassName() string {
	return r.conf.BlockClass("row")
}

// Render creates a <div> element for a row, wrapping the given children
// (usually rendered columns).
func (r *Row) Render(children ...*html.Node) *html.Node {
	n := element(atom.Div, r.ClassName())
	appendChildren(n, children)
	return n
}
