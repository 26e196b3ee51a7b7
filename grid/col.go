package grid

import (
	"github.com/npillmayer/gridstyle"
	"github.com/npillmayer/gridstyle/css"
	"github.com/npillmayer/gridstyle/dom/style"
	"github.com/npillmayer/gridstyle/maybe"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Gutter is the spacing between grid columns, (horizontal, vertical) in pixels.
type Gutter = gridstyle.Pair[float64, float64]

// NoGutter is the gutter of columns living outside of a row.
var NoGutter = gridstyle.P(0.0, 0.0)

// Col is a grid column. Columns are immutable once created.
type Col struct {
	conf   Config
	gutter Gutter
	base   SizeProps
	flex   css.FlexT
	sizes  [breakpointCount]*SizeProps // nil for breakpoints without override
}

// ColOption configures a column during construction.
type ColOption func(*Col)

// Span sets the number of grid columns a column spans. The default is 0.
func Span(u Unit) ColOption {
	return func(c *Col) { c.base.Span = maybe.Just(u) }
}

// Order sets the flex order of a column.
func Order(u Unit) ColOption {
	return func(c *Col) { c.base.Order = maybe.Just(u) }
}

// Offset sets the number of grid columns to leave empty left of a column.
func Offset(u Unit) ColOption {
	return func(c *Col) { c.base.Offset = maybe.Just(u) }
}

// Push moves a column to the right by a number of grid columns.
func Push(u Unit) ColOption {
	return func(c *Col) { c.base.Push = maybe.Just(u) }
}

// Pull moves a column to the left by a number of grid columns.
func Pull(u Unit) ColOption {
	return func(c *Col) { c.base.Pull = maybe.Just(u) }
}

// Flex sets the CSS flex property of a column.
func Flex(f css.FlexT) ColOption {
	return func(c *Col) { c.flex = f }
}

// At sets the overrides for a breakpoint. Setting a breakpoint twice keeps the
// last setting. Illegal breakpoints are ignored.
func At(bp Breakpoint, sp SizeProps) ColOption {
	return func(c *Col) {
		if bp >= breakpointCount {
			tracer().Errorf("grid: ignoring overrides for illegal breakpoint %s", bp)
			return
		}
		c.sizes[bp] = &sp
	}
}

// NewCol creates a column outside of any row, i.e. without gutter.
func NewCol(conf Config, opts ...ColOption) *Col {
	return newCol(conf, NoGutter, opts)
}

func newCol(conf Config, gutter Gutter, opts []ColOption) *Col {
	c := &Col{conf: conf, gutter: gutter}
	for _, opt := range opts {
		opt(c)
	}
	if maybe.Of(c.base.Span).IsNothing() {
		c.base.Span = maybe.Just(U(0))
	}
	return c
}

// Gutter returns the gutter a column has been created with.
func (c *Col) Gutter() Gutter {
	return c.gutter
}

// Overrides returns the overrides for a breakpoint, if any.
func (c *Col) Overrides(bp Breakpoint) (SizeProps, bool) {
	if bp >= breakpointCount || c.sizes[bp] == nil {
		return SizeProps{}, false
	}
	return *c.sizes[bp], true
}

// Classes returns the class tokens of a column: the block class, the tokens
// for the base grid units, and the tokens for every breakpoint override, in
// breakpoint order.
func (c *Col) Classes() []string {
	block := c.conf.BlockClass("col")
	cl := &classList{}
	cl.add(block)
	c.base.tokens(block, cl)
	for _, bp := range Breakpoints() {
		if sp := c.sizes[bp]; sp != nil {
			sp.tokens(block+"-"+bp.String(), cl)
		}
	}
	tracer().P("col", block).Debugf("grid: column classes = %v", cl.tokens)
	return cl.tokens
}

var className = gridstyle.Compose((*Col).Classes, joinClasses)

// ClassName returns the value for the class attribute of a column.
func (c *Col) ClassName() string {
	return className(c)
}

// Style returns the computed style of a column: paddings of half the gutter
// in either direction, if the gutter is positive, and the flex shorthand,
// if flex is set.
func (c *Col) Style() *style.PropertyMap {
	pmap := style.NewPropertyMap()
	x, y := c.gutter.Decompose()
	if half, ok := halfGutter(x); ok {
		pmap.Add("padding-left", half)
		pmap.Add("padding-right", half)
	}
	if half, ok := halfGutter(y); ok {
		pmap.Add("padding-top", half)
		pmap.Add("padding-bottom", half)
	}
	if c.flex.IsSet() {
		pmap.Add("flex", style.Property(c.flex.Shorthand()))
	}
	return pmap
}

// halfGutter is the padding for gutter g, if g is a positive length.
func halfGutter(g float64) (style.Property, bool) {
	if !(g > 0) {
		return "", false
	}
	d := css.Px(g / 2)
	if d.IsUnset() {
		return "", false
	}
	return style.Property(d.CSSString()), true
}

// Render creates a <div> element for a column, carrying the column's classes
// and, if enabled by configuration, its computed style. Children are appended
// in order and otherwise left untouched; children which are already part of
// another tree are detached from it first.
func (c *Col) Render(children ...*html.Node) *html.Node {
	n := element(atom.Div, c.ClassName())
	if c.conf.InlineStyles {
		if s := style.InlineStyle(c.Style()); s != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: s})
		}
	}
	appendChildren(n, children)
	return n
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

func appendChildren(n *html.Node, children []*html.Node) {
	for _, ch := range children {
		if ch == nil {
			continue
		}
		if ch.Parent != nil {
			ch.Parent.RemoveChild(ch)
		}
		n.AppendChild(ch)
	}
}
