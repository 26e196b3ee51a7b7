/*
Package result provides a type for the outcome of a computation that may fail.

Results are matched in the same way as options from package maybe:

    var u grid.Unit
    var err error
    switch m := r.Match(); m {
    case m.Ok(&u):
        …
    case m.Err(&err):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is either Ok(value) or Err(error).
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. A nil error is legal and results in Ok(zero value).
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From converts a conventional (value, error) return into a Result.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

// Map applies f to an Ok value and passes errors through unchanged.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	x, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(x))
}

// WithDefault returns the value of r, or def if r is an error.
func WithDefault[T any](r Result[T], def T) T {
	x, err := r.Get()
	if err != nil {
		return def
	}
	return x
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements, see package documentation.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// matcher is handed out as a pointer: results may carry values which are not
// comparable, and the switch idiom compares matchers.
type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}
