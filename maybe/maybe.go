/*
Package maybe provides an option type.

Grid settings are frequently optional: a breakpoint override may set a span
but leave the offset alone, and "not set" has to stay distinguishable from
"set to zero". Maybe[T] carries that distinction.

Values are matched like this:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        … use v
    case m.Nothing():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T comparable] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsNothing() bool
}

type maybe[T comparable] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T comparable](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty option.
func Nothing[T comparable]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Nothing for a nil option and x otherwise. Struct fields of
// interface type Maybe[T] are nil until set, and clients should not have to
// care about that.
func Of[T comparable](x Maybe[T]) Maybe[T] {
	if x == nil {
		return Nothing[T]()
	}
	return x
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S comparable](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := Of(x).Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements, see package documentation.
type Matcher[T comparable] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T comparable] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
