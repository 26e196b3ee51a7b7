package css

import (
	"math"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
)

// tracer traces with key 'gridstyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("gridstyle.css")
}

const (
	dimenNone  uint32 = 0
	dimenFixed uint32 = 0x0001 // value in d
	dimenLarge uint32 = 0x0002 // value in px, out of range for dimen.DU
)

// PX is one CSS pixel. CSS fixes 1px at 0.75pt.
const PX = dimen.PT * 3 / 4

// DimenT is an option type for CSS lengths.
type DimenT struct {
	d     dimen.DU
	px    float64
	flags uint32
}

/*
type DimenT
	= Unset
	| JustDimen dimen
*/

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenFixed}
}

// Px creates a fixed CSS dimension of x pixels. Fractions of a pixel are legal,
// as gutters are halved. Lengths beyond the range of dimen.DU (about ±43854px)
// are kept as plain pixel values. NaN and ±Inf are not lengths and result in
// an unset dimension.
func Px(x float64) DimenT {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		tracer().Debugf("css: %g px is not a length", x)
		return DimenT{}
	}
	du := math.Round(x * float64(PX))
	if du > math.MaxInt32 || du < math.MinInt32 {
		return DimenT{px: x, flags: dimenLarge}
	}
	return JustDimen(dimen.DU(du))
}

// IsUnset is true for the zero value of DimenT.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// Pixels returns the value of a dimension in CSS pixels, rounded to
// 1/10000 px. Unset dimensions return 0.
func (d DimenT) Pixels() float64 {
	switch d.flags {
	case dimenFixed:
		return math.Round(float64(d.d)/float64(PX)*1e4) / 1e4
	case dimenLarge:
		if math.Abs(d.px) >= 1e15 { // no fractions left at this magnitude
			return d.px
		}
		return math.Round(d.px*1e4) / 1e4
	}
	return 0
}

// CSSString returns d as a CSS property value, e.g. "7.5px".
// A zero length is written as "0"; unset dimensions produce the empty string.
func (d DimenT) CSSString() string {
	if d.IsUnset() {
		return ""
	}
	px := d.Pixels()
	if px == 0 {
		return "0"
	}
	return FormatNumber(px) + "px"
}

// FormatNumber writes a number the way CSS authors do: no exponent, no
// trailing zeros ("2", "2.5", "0.125").
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
