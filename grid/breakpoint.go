package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBreakpoint is returned for breakpoint names other than xs…xxl.
var ErrUnknownBreakpoint = errors.New("unknown breakpoint")

// Breakpoint is a named responsive-design threshold.
type Breakpoint uint8

// Breakpoints in ascending order of viewport width.
const (
	XS Breakpoint = iota
	SM
	MD
	LG
	XL
	XXL
	breakpointCount
)

var breakpointNames = [breakpointCount]string{"xs", "sm", "md", "lg", "xl", "xxl"}

// minWidths are the viewport widths (in px) at which breakpoints start.
var minWidths = [breakpointCount]int{0, 576, 768, 992, 1200, 1600}

// Breakpoints returns all breakpoints in the order in which their class
// tokens are emitted.
func Breakpoints() []Breakpoint {
	return []Breakpoint{XS, SM, MD, LG, XL, XXL}
}

func (bp Breakpoint) String() string {
	if bp >= breakpointCount {
		return fmt.Sprintf("Breakpoint(%d)", uint8(bp))
	}
	return breakpointNames[bp]
}

// MinWidth returns the minimum viewport width in pixels for a breakpoint.
// XS starts at 0, i.e. it is unconditional.
func (bp Breakpoint) MinWidth() int {
	if bp >= breakpointCount {
		return 0
	}
	return minWidths[bp]
}

// ParseBreakpoint returns the breakpoint for a name like "md" (case-insensitive).
func ParseBreakpoint(name string) (Breakpoint, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, bpname := range breakpointNames {
		if n == bpname {
			return Breakpoint(i), nil
		}
	}
	return XS, fmt.Errorf("%w: %q", ErrUnknownBreakpoint, name)
}
