package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/gridstyle/maybe"
	"github.com/npillmayer/gridstyle/result"
)

// ErrNegativeUnit is returned for grid units below zero.
var ErrNegativeUnit = errors.New("grid unit must not be negative")

// ErrNotNumeric is returned for textual grid units which are not a number.
var ErrNotNumeric = errors.New("grid unit is not numeric")

// Unit is a grid unit value: the number of grid columns to span, offset,
// push or pull by, or an order index.
//
// Units are created either from a number (U) or from a numeric string
// (ParseUnit). The distinction is kept: a numeric zero is a "literal zero",
// which activates class tokens even though it is falsy, whereas the string
// "0" is truthy in its own right.
type Unit struct {
	text    string
	n       uint
	numeric bool
}

// U creates a grid unit from a number.
func U(n uint) Unit {
	return Unit{text: strconv.FormatUint(uint64(n), 10), n: n, numeric: true}
}

// ParseUnit creates a grid unit from a string of decimal digits. The string is
// kept as given and will appear verbatim in class names ("06" stays "06").
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return Unit{}, fmt.Errorf("%w: empty string", ErrNotNumeric)
	}
	if strings.HasPrefix(s, "-") {
		if _, err := strconv.Atoi(s); err == nil {
			return Unit{}, fmt.Errorf("%w: %q", ErrNegativeUnit, s)
		}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Unit{}, fmt.Errorf("%w: %q", ErrNotNumeric, s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return Unit{}, fmt.Errorf("%w: %q: %v", ErrNotNumeric, s, err)
	}
	return Unit{text: s, n: uint(n)}, nil
}

// ParseUnitResult is ParseUnit for clients working with result types.
func ParseUnitResult(s string) result.Result[Unit] {
	u, err := ParseUnit(s)
	return result.From(u, err)
}

// MustParseUnit is like ParseUnit but panics on illegal input. It is intended
// for unit literals.
func MustParseUnit(s string) Unit {
	u, err := ParseUnit(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Unit) String() string {
	return u.text
}

// Value returns the numeric value of u.
func (u Unit) Value() uint {
	return u.n
}

// IsTruthy is true for non-zero numbers and for non-empty strings.
func (u Unit) IsTruthy() bool {
	if u.numeric {
		return u.n != 0
	}
	return u.text != ""
}

// IsLiteralZero is true for units created from the number 0.
func (u Unit) IsLiteralZero() bool {
	return u.numeric && u.n == 0
}

// --- Activation ------------------------------------------------------------

// spanActivation activates a span token whenever the span is defined.
func spanActivation(mu maybe.Maybe[Unit]) (Unit, bool) {
	var u Unit
	switch m := maybe.Of(mu).Match(); m {
	case m.Just(&u):
		return u, true
	}
	return u, false
}

// fieldActivation activates order, offset, push and pull tokens for truthy
// values and for a literal zero.
func fieldActivation(mu maybe.Maybe[Unit]) (Unit, bool) {
	var u Unit
	switch m := maybe.Of(mu).Match(); m {
	case m.Just(&u):
		return u, u.IsTruthy() || u.IsLiteralZero()
	}
	return u, false
}
