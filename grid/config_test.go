package grid_test

import (
	"testing"

	"github.com/npillmayer/gridstyle/grid"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	conf, err := grid.ConfigFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, grid.DefaultConfig(), conf)
	conf, err = grid.ConfigFrom(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, "el", conf.Namespace)
	assert.True(t, conf.InlineStyles)
	assert.Equal(t, 24, conf.Columns)
	assert.Equal(t, "el-col", conf.BlockClass("col"))
	assert.Equal(t, "el-row", grid.Config{}.BlockClass("row"))
}

func TestConfigNamespace(t *testing.T) {
	conf, err := grid.ConfigFrom(testconfig.Conf{
		grid.KeyNamespace: "ant",
		grid.KeyColumns:   "12",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, conf.Columns)
	col := grid.NewCol(conf, grid.Span(grid.U(4)), grid.At(grid.SM, grid.Sizes(grid.PushOf(grid.U(1)))))
	assert.Equal(t, "ant-col ant-col-4 ant-col-sm-push-1", col.ClassName())
	assert.Equal(t, "ant-row", grid.NewRow(conf, 0, 0).ClassName())
}

func TestConfigErrors(t *testing.T) {
	for _, c := range []testconfig.Conf{
		{grid.KeyNamespace: "1up"},
		{grid.KeyNamespace: "my ns"},
		{grid.KeyNamespace: ""},
		{grid.KeyColumns: "0"},
		{grid.KeyColumns: "many"},
	} {
		_, err := grid.ConfigFrom(c)
		assert.ErrorIs(t, err, grid.ErrConfig, "config %v", c)
	}
}

func TestParseBreakpoint(t *testing.T) {
	for i, name := range []string{"xs", "sm", "md", "lg", "xl", "xxl"} {
		bp, err := grid.ParseBreakpoint(name)
		require.NoError(t, err)
		assert.Equal(t, grid.Breakpoints()[i], bp)
		assert.Equal(t, name, bp.String())
	}
	bp, err := grid.ParseBreakpoint(" XXL ")
	require.NoError(t, err)
	assert.Equal(t, grid.XXL, bp)
	_, err = grid.ParseBreakpoint("huge")
	assert.ErrorIs(t, err, grid.ErrUnknownBreakpoint)
	assert.Equal(t, 0, grid.XS.MinWidth())
	assert.Equal(t, 768, grid.MD.MinWidth())
	assert.Equal(t, "Breakpoint(9)", grid.Breakpoint(9).String())
}
