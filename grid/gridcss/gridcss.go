/*
Package gridcss generates the stylesheet the class tokens of package grid
refer to.

For every breakpoint the stylesheet holds one rule per span (1…columns) and
one rule per order, offset, push and pull value (0…columns). Rules for xs are
unconditional, rules for the other breakpoints are wrapped into

    @media (min-width: <breakpoint width>px) { … }

Breakpoint rules come after base rules and breakpoints are ordered by width, so
for equally specific selectors the widest matching breakpoint wins.

The generated text may be embedded into an HTML <style> element or parsed
into a cssom.StyleSheet with Parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gridcss

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/gridstyle/css"
	"github.com/npillmayer/gridstyle/dom/style/cssom"
	"github.com/npillmayer/gridstyle/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/gridstyle/grid"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gridstyle.grid'.
func tracer() tracing.Trace {
	return tracing.Select("gridstyle.grid")
}

// Generate returns the grid stylesheet for a configuration.
func Generate(conf grid.Config) string {
	if conf.Columns < 1 {
		conf.Columns = grid.DefaultConfig().Columns
	}
	w := &sheetWriter{}
	w.rule("."+conf.BlockClass("row"),
		"display", "flex",
		"flex-flow", "row wrap")
	block := conf.BlockClass("col")
	w.rule("."+block,
		"position", "relative",
		"max-width", "100%",
		"min-height", "1px")
	sizes(w, block, conf.Columns, false)
	for _, bp := range grid.Breakpoints() {
		prefix := block + "-" + bp.String()
		if bp.MinWidth() == 0 {
			sizes(w, prefix, conf.Columns, true)
			continue
		}
		w.open(fmt.Sprintf("@media (min-width: %dpx)", bp.MinWidth()))
		sizes(w, prefix, conf.Columns, true)
		w.close()
	}
	tracer().Debugf("gridcss: generated %d rules for %d columns", w.count, conf.Columns)
	return w.String()
}

// sizes writes the rules of one class prefix, e.g. "el-col" or "el-col-md".
func sizes(w *sheetWriter, prefix string, cols int, hideOnZero bool) {
	if hideOnZero {
		w.rule("."+prefix+"-0", "display", "none")
	}
	for n := 1; n <= cols; n++ {
		p := percent(n, cols)
		w.rule("."+fmt.Sprintf("%s-%d", prefix, n),
			"display", "block",
			"flex", "0 0 "+p,
			"max-width", p)
	}
	for n := 0; n <= cols; n++ {
		w.rule("."+fmt.Sprintf("%s-order-%d", prefix, n), "order", fmt.Sprint(n))
	}
	for n := 0; n <= cols; n++ {
		w.rule("."+fmt.Sprintf("%s-offset-%d", prefix, n), "margin-left", orZero(n, cols, "0"))
	}
	for n := 0; n <= cols; n++ {
		w.rule("."+fmt.Sprintf("%s-push-%d", prefix, n), "left", orZero(n, cols, "auto"))
	}
	for n := 0; n <= cols; n++ {
		w.rule("."+fmt.Sprintf("%s-pull-%d", prefix, n), "right", orZero(n, cols, "auto"))
	}
}

// percent returns n/cols as a CSS percentage, with at most 8 decimals.
func percent(n, cols int) string {
	x := float64(n) / float64(cols) * 100
	x = math.Round(x*1e8) / 1e8
	return css.FormatNumber(x) + "%"
}

func orZero(n, cols int, zero string) string {
	if n == 0 {
		return zero
	}
	return percent(n, cols)
}

// Parse parses a stylesheet, usually the output of Generate.
func Parse(text string) (cssom.StyleSheet, error) {
	sheet, err := douceuradapter.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("gridcss: %w", err)
	}
	return sheet, nil
}

// Stylesheet generates and parses the grid stylesheet for a configuration.
func Stylesheet(conf grid.Config) (cssom.StyleSheet, error) {
	return Parse(Generate(conf))
}

// --- Writer ----------------------------------------------------------------

type sheetWriter struct {
	strings.Builder
	indent string
	count  int
}

// rule writes a rule; decls alternate between property keys and values.
func (w *sheetWriter) rule(selector string, decls ...string) {
	w.count++
	w.WriteString(w.indent + selector + " {\n")
	for i := 0; i+1 < len(decls); i += 2 {
		w.WriteString(w.indent + "  " + decls[i] + ": " + decls[i+1] + ";\n")
	}
	w.WriteString(w.indent + "}\n")
}

func (w *sheetWriter) open(prelude string) {
	w.WriteString(prelude + " {\n")
	w.indent = "  "
}

func (w *sheetWriter) close() {
	w.indent = ""
	w.WriteString("}\n")
}
