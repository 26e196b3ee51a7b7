package css

import (
	"regexp"
	"strings"
)

// flexKind discriminates the variants of FlexT.
type flexKind uint8

const (
	flexUnset    flexKind = iota
	flexNumber            // bare number n, shorthand "n n auto"
	flexLength            // number with unit px|em|rem|%, shorthand "0 0 <basis>"
	flexVerbatim          // anything else: keywords, composite shorthands, garbage
)

// FlexT is an option type for the CSS flex property of a grid column.
type FlexT struct {
	n    float64
	s    string
	kind flexKind
}

/*
type FlexT
	= Unset
	| Number n
	| Length basis
	| Verbatim string
*/

var flexBasis = regexp.MustCompile(`^\d+(\.\d+)?(px|em|rem|%)$`)

// FlexNumber creates a flex value from a bare number.
func FlexNumber(n float64) FlexT {
	return FlexT{n: n, kind: flexNumber}
}

// Flex creates a flex value from a string. Strings which are a plain number
// followed by one of px, em, rem or % are taken as flex-basis; every other
// string (including "auto", "none" or a complete shorthand) is kept verbatim.
// Flex never fails.
func Flex(s string) FlexT {
	if flexBasis.MatchString(s) {
		return FlexT{s: s, kind: flexLength}
	}
	return FlexT{s: s, kind: flexVerbatim}
}

// IsSet is true if the flex value should be applied. Like a column without
// a flex setting, the number 0 and the empty string leave the flex property
// alone.
func (f FlexT) IsSet() bool {
	switch f.kind {
	case flexNumber:
		return f.n != 0
	case flexLength, flexVerbatim:
		return f.s != ""
	}
	return false
}

// Shorthand returns the value for the CSS flex property.
func (f FlexT) Shorthand() string {
	switch f.kind {
	case flexNumber:
		n := FormatNumber(f.n)
		return strings.Join([]string{n, n, "auto"}, " ")
	case flexLength:
		return "0 0 " + f.s
	case flexVerbatim:
		tracer().Debugf("flex value %q passed through verbatim", f.s)
		return f.s
	}
	return ""
}

func (f FlexT) String() string {
	switch f.kind {
	case flexNumber:
		return "Number(" + FormatNumber(f.n) + ")"
	case flexLength:
		return "Length(" + f.s + ")"
	case flexVerbatim:
		return "Verbatim(" + f.s + ")"
	}
	return "Unset"
}

// ---------------------------------------------------------------------------

func (f FlexT) Match() *FlexMatcher {
	return &FlexMatcher{flex: f}
}

type FlexMatcher struct {
	flex FlexT
}

func (m *FlexMatcher) Unset() *FlexMatcher {
	if m.flex.kind == flexUnset {
		return m
	}
	return nil
}

func (m *FlexMatcher) Number(n *float64) *FlexMatcher {
	if m.flex.kind == flexNumber {
		if n != nil {
			*n = m.flex.n
		}
		return m
	}
	return nil
}

func (m *FlexMatcher) Length(basis *string) *FlexMatcher {
	if m.flex.kind == flexLength {
		if basis != nil {
			*basis = m.flex.s
		}
		return m
	}
	return nil
}

func (m *FlexMatcher) Verbatim(s *string) *FlexMatcher {
	if m.flex.kind == flexVerbatim {
		if s != nil {
			*s = m.flex.s
		}
		return m
	}
	return nil
}
