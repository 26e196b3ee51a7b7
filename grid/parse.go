package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/gridstyle/maybe"
)

// ErrSizeSyntax flags a malformed textual size setting.
var ErrSizeSyntax = errors.New("malformed size setting")

// ParseSizes reads size settings in the form
//
//    span=8,offset=0,order=1
//
// A bare unit ("8") is short for "span=8". Fields not mentioned stay absent.
func ParseSizes(text string) (SizeProps, error) {
	var sp SizeProps
	text = strings.TrimSpace(text)
	if text == "" {
		return sp, fmt.Errorf("%w: empty", ErrSizeSyntax)
	}
	if !strings.Contains(text, "=") {
		u, err := ParseUnit(text)
		if err != nil {
			return sp, err
		}
		sp.Span = maybe.Just(u)
		return sp, nil
	}
	for _, item := range strings.Split(text, ",") {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return sp, fmt.Errorf("%w: %q is not key=value", ErrSizeSyntax, item)
		}
		u, err := ParseUnit(strings.TrimSpace(value))
		if err != nil {
			return sp, fmt.Errorf("size %q: %w", strings.TrimSpace(key), err)
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "span":
			sp.Span = maybe.Just(u)
		case "order":
			sp.Order = maybe.Just(u)
		case "offset":
			sp.Offset = maybe.Just(u)
		case "push":
			sp.Push = maybe.Just(u)
		case "pull":
			sp.Pull = maybe.Just(u)
		default:
			return sp, fmt.Errorf("%w: unknown field %q", ErrSizeSyntax, key)
		}
	}
	return sp, nil
}

// ParseAt reads a breakpoint override in the form "md:span=8,offset=0" or
// "md:8" and returns it as a column option.
func ParseAt(text string) (ColOption, error) {
	name, sizes, ok := strings.Cut(text, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q lacks a breakpoint prefix", ErrSizeSyntax, text)
	}
	bp, err := ParseBreakpoint(name)
	if err != nil {
		return nil, err
	}
	sp, err := ParseSizes(sizes)
	if err != nil {
		return nil, fmt.Errorf("breakpoint %s: %w", bp, err)
	}
	return At(bp, sp), nil
}
