package css_test

import (
	"testing"

	"github.com/npillmayer/gridstyle/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFlexShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gridstyle.css")
	defer teardown()
	//
	cases := []struct {
		flex css.FlexT
		want string
	}{
		{css.FlexNumber(2), "2 2 auto"},
		{css.FlexNumber(1.5), "1.5 1.5 auto"},
		{css.Flex("50%"), "0 0 50%"},
		{css.Flex("100px"), "0 0 100px"},
		{css.Flex("2.5em"), "0 0 2.5em"},
		{css.Flex("3rem"), "0 0 3rem"},
		{css.Flex("auto"), "auto"},
		{css.Flex("none"), "none"},
		{css.Flex("1 1 200px"), "1 1 200px"},
		{css.Flex("50 %"), "50 %"},
		{css.Flex("-10px"), "-10px"},
		{css.Flex(".5em"), ".5em"},
		{css.Flex("10pt"), "10pt"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.flex.Shorthand(), "flex %v", c.flex)
	}
}

func TestFlexIsSet(t *testing.T) {
	assert.False(t, css.FlexT{}.IsSet())
	assert.False(t, css.FlexNumber(0).IsSet())
	assert.False(t, css.Flex("").IsSet())
	assert.True(t, css.FlexNumber(1).IsSet())
	assert.True(t, css.Flex("0").IsSet())
	assert.True(t, css.Flex("auto").IsSet())
	assert.Equal(t, "", css.FlexT{}.Shorthand())
}

func TestFlexMatch(t *testing.T) {
	var basis string
	switch m := css.Flex("25%").Match(); m {
	case m.Number(nil):
		t.Error("expected 25% not to be a number")
	case m.Length(&basis):
	default:
		t.Error("expected 25% to be a length")
	}
	assert.Equal(t, "25%", basis)

	var n float64
	switch m := css.FlexNumber(3).Match(); m {
	case m.Number(&n):
	default:
		t.Error("expected 3 to be a number")
	}
	assert.Equal(t, 3.0, n)

	matched := false
	switch m := (css.FlexT{}).Match(); m {
	case m.Unset():
		matched = true
	}
	assert.True(t, matched)
	assert.Equal(t, "Verbatim(auto)", css.Flex("auto").String())
}
