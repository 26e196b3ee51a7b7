package grid_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/gridstyle/css"
	"github.com/npillmayer/gridstyle/dom/style"
	"github.com/npillmayer/gridstyle/grid"
	"github.com/npillmayer/gridstyle/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gridstyle.grid")
	defer teardown()
	//
	conf := grid.DefaultConfig()
	for n := uint(0); n <= 30; n++ {
		col := grid.NewCol(conf, grid.Span(grid.U(n)))
		assert.Contains(t, col.Classes(), fmt.Sprintf("el-col-%d", n))
	}
}

func TestDefaultColumn(t *testing.T) {
	col := grid.NewCol(grid.DefaultConfig())
	assert.Equal(t, []string{"el-col", "el-col-0"}, col.Classes())
	assert.Equal(t, "el-col el-col-0", col.ClassName())
	assert.Equal(t, 0, col.Style().Size())
}

func TestExplicitZeroActivates(t *testing.T) {
	col := grid.NewCol(grid.DefaultConfig(),
		grid.Order(grid.U(0)),
		grid.Offset(grid.U(0)),
		grid.Push(grid.U(0)),
		grid.Pull(grid.U(0)),
	)
	assert.Equal(t, []string{
		"el-col", "el-col-0",
		"el-col-order-0", "el-col-offset-0", "el-col-push-0", "el-col-pull-0",
	}, col.Classes())
}

func TestUnsetFieldsDoNotActivate(t *testing.T) {
	col := grid.NewCol(grid.DefaultConfig(), grid.Span(grid.U(12)), grid.Offset(grid.U(6)))
	assert.Equal(t, []string{"el-col", "el-col-12", "el-col-offset-6"}, col.Classes())
}

func TestTextualUnits(t *testing.T) {
	col := grid.NewCol(grid.DefaultConfig(),
		grid.Span(grid.MustParseUnit("06")),
		grid.Order(grid.MustParseUnit("0")),
	)
	assert.Equal(t, []string{"el-col", "el-col-06", "el-col-order-0"}, col.Classes())

	u, err := grid.ParseUnit("24")
	require.NoError(t, err)
	assert.Equal(t, uint(24), u.Value())
	assert.True(t, u.IsTruthy())
	assert.False(t, u.IsLiteralZero())

	zero := grid.MustParseUnit("0")
	assert.True(t, zero.IsTruthy(), "the string \"0\" is truthy")
	assert.False(t, zero.IsLiteralZero())
	assert.False(t, grid.U(0).IsTruthy())
	assert.True(t, grid.U(0).IsLiteralZero())
}

func TestParseUnitErrors(t *testing.T) {
	_, err := grid.ParseUnit("-1")
	assert.ErrorIs(t, err, grid.ErrNegativeUnit)
	for _, s := range []string{"", "abc", "1.5", " 3", "3px", "-x"} {
		_, err := grid.ParseUnit(s)
		assert.ErrorIs(t, err, grid.ErrNotNumeric, "input %q", s)
	}
	assert.Panics(t, func() { grid.MustParseUnit("six") })

	var u grid.Unit
	switch m := grid.ParseUnitResult("8").Match(); m {
	case m.Ok(&u):
	default:
		t.Error("expected \"8\" to parse")
	}
	assert.Equal(t, "8", u.String())
	var e error
	switch m := grid.ParseUnitResult("eight").Match(); m {
	case m.Err(&e):
	default:
		t.Error("expected \"eight\" not to parse")
	}
	assert.ErrorIs(t, e, grid.ErrNotNumeric)
}

func TestBreakpointSpanTokens(t *testing.T) {
	conf := grid.DefaultConfig()
	for _, bp := range grid.Breakpoints() {
		for _, s := range []uint{0, 1, 8, 24} {
			col := grid.NewCol(conf, grid.At(bp, grid.Sizes(grid.SpanOf(grid.U(s)))))
			assert.Contains(t, col.Classes(), fmt.Sprintf("el-col-%s-%d", bp, s))
		}
		col := grid.NewCol(conf, grid.At(bp, grid.Sizes(grid.OrderOf(grid.U(2)))))
		for _, token := range col.Classes() {
			assert.False(t, strings.HasSuffix(token, "-"), "dangling token %q", token)
			assert.NotContains(t, token, "undefined")
			assert.NotEqual(t, fmt.Sprintf("el-col-%s-", bp), token)
		}
		assert.Equal(t, []string{"el-col", "el-col-0", fmt.Sprintf("el-col-%s-order-2", bp)}, col.Classes())
	}
}

func TestBreakpointZeroFields(t *testing.T) {
	col := grid.NewCol(grid.DefaultConfig(), grid.At(grid.MD, grid.Sizes(
		grid.OffsetOf(grid.U(0)),
		grid.PushOf(grid.U(0)),
		grid.PullOf(grid.U(0)),
	)))
	assert.Equal(t, []string{
		"el-col", "el-col-0", "el-col-md-offset-0", "el-col-md-push-0", "el-col-md-pull-0",
	}, col.Classes())
}

func TestSizePropsLiteral(t *testing.T) {
	// nil fields are absent fields
	col := grid.NewCol(grid.DefaultConfig(), grid.At(grid.LG, grid.SizeProps{
		Order: maybe.Just(grid.U(3)),
		Pull:  maybe.Nothing[grid.Unit](),
	}))
	assert.Equal(t, []string{"el-col", "el-col-0", "el-col-lg-order-3"}, col.Classes())
	sp, ok := col.Overrides(grid.LG)
	assert.True(t, ok)
	assert.True(t, maybe.Of(sp.Span).IsNothing())
	_, ok = col.Overrides(grid.XS)
	assert.False(t, ok)
}

func TestClassOrderAndAdditivity(t *testing.T) {
	col := grid.NewCol(grid.DefaultConfig(),
		grid.At(grid.XXL, grid.Sizes(grid.SpanOf(grid.U(4)))),
		grid.Span(grid.U(6)),
		grid.Pull(grid.U(1)),
		grid.Order(grid.U(2)),
		grid.At(grid.XS, grid.Sizes(grid.SpanOf(grid.U(24)), grid.PullOf(grid.U(0)))),
		grid.At(grid.MD, grid.Sizes(grid.SpanOf(grid.U(8)), grid.OrderOf(grid.U(1)))),
	)
	assert.Equal(t, []string{
		"el-col", "el-col-6", "el-col-order-2", "el-col-pull-1",
		"el-col-xs-24", "el-col-xs-pull-0",
		"el-col-md-8", "el-col-md-order-1",
		"el-col-xxl-4",
	}, col.Classes())
}

func TestIllegalBreakpointIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gridstyle.grid")
	defer teardown()
	//
	col := grid.NewCol(grid.DefaultConfig(), grid.At(grid.Breakpoint(42), grid.Sizes(grid.SpanOf(grid.U(1)))))
	assert.Equal(t, []string{"el-col", "el-col-0"}, col.Classes())
}

func TestFlexStyle(t *testing.T) {
	conf := grid.DefaultConfig()
	cases := []struct {
		flex css.FlexT
		want style.Property
		set  bool
	}{
		{css.FlexNumber(2), "2 2 auto", true},
		{css.Flex("50%"), "0 0 50%", true},
		{css.Flex("auto"), "auto", true},
		{css.Flex("none"), "none", true},
		{css.Flex("1 0 100px"), "1 0 100px", true},
		{css.FlexNumber(0), "", false},
		{css.Flex(""), "", false},
	}
	for _, c := range cases {
		col := grid.NewCol(conf, grid.Flex(c.flex))
		p, ok := col.Style().Property("flex")
		assert.Equal(t, c.set, ok, "flex %v", c.flex)
		assert.Equal(t, c.want, p, "flex %v", c.flex)
	}
}

func TestGutterStyle(t *testing.T) {
	row := grid.NewRow(grid.DefaultConfig(), 20, 10)
	pmap := row.Col().Style()
	for key, want := range map[string]style.Property{
		"padding-left":   "10px",
		"padding-right":  "10px",
		"padding-top":    "5px",
		"padding-bottom": "5px",
	} {
		p, ok := pmap.Property(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, p, key)
	}

	odd := grid.NewRow(grid.DefaultConfig(), 15, 0).Col().Style()
	p, _ := odd.Property("padding-left")
	assert.Equal(t, style.Property("7.5px"), p)
	_, ok := odd.Property("padding-top")
	assert.False(t, ok, "vertical gutter 0 must not set paddings")

	assert.Equal(t, 0, grid.NewRow(grid.DefaultConfig(), 0, 0).Col().Style().Size())
}

func TestLargeAndInvalidGutter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gridstyle.grid")
	defer teardown()
	//
	for gutter, want := range map[float64]style.Property{
		100000: "50000px",
		1e15:   "500000000000000px",
	} {
		p, ok := grid.NewRow(grid.DefaultConfig(), gutter, 0).Col().Style().Property("padding-left")
		require.True(t, ok, "gutter %g", gutter)
		assert.Equal(t, want, p, "gutter %g", gutter)
	}
	for _, bad := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		row := grid.NewRow(grid.DefaultConfig(), bad, bad)
		h, v := row.Gutter().Decompose()
		assert.Equal(t, 0.0, h, "gutter %g", bad)
		assert.Equal(t, 0.0, v, "gutter %g", bad)
		assert.Equal(t, 0, row.Col().Style().Size(), "gutter %g", bad)
	}
	row := grid.NewRow(grid.DefaultConfig(), math.Inf(1), 10)
	p, ok := row.Col().Style().Property("padding-top")
	assert.True(t, ok)
	assert.Equal(t, style.Property("5px"), p)
}

func TestIdempotence(t *testing.T) {
	row := grid.NewRow(grid.DefaultConfig(), 16, 8)
	col := row.Col(
		grid.Span(grid.U(8)),
		grid.Offset(grid.U(0)),
		grid.Flex(css.Flex("30%")),
		grid.At(grid.SM, grid.Sizes(grid.SpanOf(grid.U(12)))),
	)
	assert.Equal(t, col.Classes(), col.Classes())
	assert.Equal(t, col.ClassName(), col.ClassName())
	assert.True(t, col.Style().Equal(col.Style()))
	assert.Equal(t, style.InlineStyle(col.Style()), style.InlineStyle(col.Style()))
}
