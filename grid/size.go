package grid

import (
	"github.com/npillmayer/gridstyle/maybe"
)

// SizeProps holds the grid units of a column, either for the base layout or
// as an override for a breakpoint. Every field is optional; a nil field is
// the same as maybe.Nothing.
type SizeProps struct {
	Span   maybe.Maybe[Unit]
	Order  maybe.Maybe[Unit]
	Offset maybe.Maybe[Unit]
	Push   maybe.Maybe[Unit]
	Pull   maybe.Maybe[Unit]
}

// SizeOption sets a field of SizeProps.
type SizeOption func(*SizeProps)

// Sizes creates breakpoint overrides, e.g.
//
//     grid.Sizes(grid.SpanOf(grid.U(12)), grid.OffsetOf(grid.U(0)))
//
func Sizes(opts ...SizeOption) SizeProps {
	sp := SizeProps{}
	for _, opt := range opts {
		opt(&sp)
	}
	return sp
}

// SpanOf sets the span of a breakpoint override.
func SpanOf(u Unit) SizeOption {
	return func(sp *SizeProps) { sp.Span = maybe.Just(u) }
}

// OrderOf sets the order of a breakpoint override.
func OrderOf(u Unit) SizeOption {
	return func(sp *SizeProps) { sp.Order = maybe.Just(u) }
}

// OffsetOf sets the offset of a breakpoint override.
func OffsetOf(u Unit) SizeOption {
	return func(sp *SizeProps) { sp.Offset = maybe.Just(u) }
}

// PushOf sets the push of a breakpoint override.
func PushOf(u Unit) SizeOption {
	return func(sp *SizeProps) { sp.Push = maybe.Just(u) }
}

// PullOf sets the pull of a breakpoint override.
func PullOf(u Unit) SizeOption {
	return func(sp *SizeProps) { sp.Pull = maybe.Just(u) }
}

// tokens appends the class tokens for sp to cl. prefix is the block class,
// possibly extended by a breakpoint segment.
func (sp SizeProps) tokens(prefix string, cl *classList) {
	if u, ok := spanActivation(sp.Span); ok {
		cl.add(prefix + "-" + u.String())
	}
	fields := []struct {
		name string
		unit maybe.Maybe[Unit]
	}{
		{"order", sp.Order},
		{"offset", sp.Offset},
		{"push", sp.Push},
		{"pull", sp.Pull},
	}
	for _, f := range fields {
		if u, ok := fieldActivation(f.unit); ok {
			cl.add(prefix + "-" + f.name + "-" + u.String())
		}
	}
}
