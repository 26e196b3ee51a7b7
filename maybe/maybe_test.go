package maybe_test

import (
	"testing"

	. "github.com/npillmayer/gridstyle/maybe"
	"github.com/stretchr/testify/assert"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeJustZeroIsNotNothing(t *testing.T) {
	zero := Just(0)
	assert.False(t, zero.IsNothing(), "explicit zero must be present")
	assert.True(t, Nothing[int]().IsNothing())

	matched := false
	switch m := zero.Match(); m {
	case m.Nothing():
	case m.Just(nil):
		matched = true
	}
	assert.True(t, matched, "expected Just(0) to match Just")
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	assert.Equal(t, 7, x.WithDefault(100))
	y := Nothing[int]()
	assert.Equal(t, 100, y.WithDefault(100))
}

func TestMaybeOfNil(t *testing.T) {
	var unset Maybe[string]
	o := Of(unset)
	assert.NotNil(t, o)
	assert.True(t, o.IsNothing())
	assert.Equal(t, "x", Of(Just("x")).WithDefault(""))
}

func TestMaybeMap(t *testing.T) {
	xx := Just(7).Map(func(n int) int {
		return n * 2
	})
	assert.Equal(t, 14, xx.WithDefault(0))

	yy := Nothing[int]().Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	assert.True(t, AndThen(gt0, Just(0)).IsNothing())
	assert.True(t, AndThen(gt0, nil).IsNothing())
}
