/*
Package grid computes class names and inline styles for the columns of a
responsive grid and renders rows and columns as HTML nodes.

A column is described by grid units: span, order, offset, push and pull, plus
optional overrides per breakpoint (xs, sm, md, lg, xl, xxl) and an optional
flex setting. From these, Col derives a list of class tokens

    el-col el-col-6 el-col-offset-2 el-col-md-8 el-col-md-order-0

and a property map holding paddings (half the row's gutter) and the flex
shorthand. The tokens are additive: base and breakpoint tokens are emitted
together, media queries in the grid stylesheet (package gridcss) decide which
of them wins. The span token is always emitted (span defaults to 0), while
order, offset, push and pull tokens appear only for values given explicitly:
Order(U(0)) yields el-col-order-0, a column without an order yields none.

Rows do not hand the gutter to their columns implicitly. A column created by
Row.Col carries the row's gutter, a column created by NewCol has none.

    row := grid.NewRow(conf, 20, 10)
    col := row.Col(grid.Span(grid.U(6)), grid.At(grid.MD, grid.Sizes(grid.SpanOf(grid.U(8)))))
    node := row.Render(col.Render(content))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gridstyle.grid'.
func tracer() tracing.Trace {
	return tracing.Select("gridstyle.grid")
}
