package gridstyle_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/gridstyle"
)

func TestPairDecompose(t *testing.T) {
	gutter := gridstyle.P(20.0, 10.0)
	x, y := gutter.Decompose()
	if x != 20 || y != 10 {
		t.Errorf("expected gutter to decompose into (20,10), is (%v,%v)", x, y)
	}
	if !gutter.Matches(gridstyle.P(20.0, 10.0)) {
		t.Error("expected equal pairs to match, don't")
	}
	if gutter.Matches(gridstyle.P(10.0, 20.0)) {
		t.Error("expected swapped pair not to match, does")
	}
}

func TestComposition(t *testing.T) {
	g := func(n int) float64 {
		return float64(n) / 2
	}
	f := func(x float64) string {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	h := gridstyle.Compose(g, f)
	if h(15) != "7.5" {
		t.Logf("composition h(15) = %q", h(15))
		t.Error("expected h(15) to return string 7.5")
	}
}
