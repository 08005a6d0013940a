package result

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"reflect"
)

// Result holds either a present value (Ok) or a present error (Err),
// never both and never neither. It is an immutable value: every
// operation returns a fresh Result or a plain value, so instances may be
// shared freely without synchronization.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Unit is the payload of a Result that succeeded without producing a
// meaningful value. It has exactly one value, Unit{}.
type Unit struct{}

func (Unit) String() string {
	return "()"
}

// Ok wraps a present value. The value must not be nil; passing a nil
// value is a contract violation and panics with InvalidArgument.
func Ok[T any](value T) Result[T] {
	if isNil(value) {
		panic(invalidArgument("ok value must not be nil"))
	}
	return Result[T]{value: value, ok: true}
}

// Err wraps a present error. The error must not be nil; passing a nil
// error is a contract violation and panics with InvalidArgument.
func Err[T any](err error) Result[T] {
	if isNil(err) {
		panic(invalidArgument("err value must not be nil"))
	}
	return Result[T]{err: err}
}

// Done reports success with no payload, the nullary form of Ok.
func Done() Result[Unit] {
	return Ok(Unit{})
}

// Of lifts a conventional (value, error) pair into a Result. A non-nil
// error wins; otherwise the value is validated exactly as by Ok.
func Of[T any](value T, err error) Result[T] {
	if !isNil(err) {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Get returns the held value. Calling Get on an Err is a contract
// violation: it panics with NoValuePresent, quoting the held error.
func (r Result[T]) Get() T {
	if !r.ok {
		panic(noValuePresent("no value present: " + r.err.Error()))
	}
	return r.value
}

// GetOr returns the held value, or fallback on Err. The fallback is
// validated eagerly on both variants: even an Ok that will never use it
// panics with InvalidArgument when it is nil. This strictness is
// deliberate, matching construction.
func (r Result[T]) GetOr(fallback T) T {
	if isNil(fallback) {
		panic(invalidArgument("fallback must not be nil"))
	}
	if r.ok {
		return r.value
	}
	return fallback
}

// GetOrElse returns the held value, or fn applied to the held error on
// Err. fn is validated on both variants; on Err its result must be
// non-nil.
func (r Result[T]) GetOrElse(fn func(error) T) T {
	if fn == nil {
		panic(invalidArgument("fallback function must not be nil"))
	}
	if r.ok {
		return r.value
	}
	v := fn(r.err)
	if isNil(v) {
		panic(invalidArgument("fallback function must not return nil"))
	}
	return v
}

// Error returns the held error. Calling Error on an Ok is a contract
// violation and panics with NoValuePresent.
func (r Result[T]) Error() error {
	if r.ok {
		panic(noValuePresent("no error present"))
	}
	return r.err
}

// ErrorMessage returns the held error's message. Panics with
// NoValuePresent on Ok.
func (r Result[T]) ErrorMessage() string {
	return r.Error().Error()
}

// output is the sink PrintErrorMessage writes to. Any line-writing
// destination satisfies the contract.
var output io.Writer = os.Stdout

// SetOutput redirects PrintErrorMessage, mainly for tests.
func SetOutput(w io.Writer) {
	output = w
}

// PrintErrorMessage writes the held error's message and a newline to the
// package output sink. Panics with NoValuePresent on Ok.
func (r Result[T]) PrintErrorMessage() {
	fmt.Fprintln(output, r.ErrorMessage())
}

// OnOk invokes action with the held value on Ok and does nothing on Err,
// returning the receiver either way. A nil action panics with
// InvalidArgument regardless of variant.
func (r Result[T]) OnOk(action func(T)) Result[T] {
	if action == nil {
		panic(invalidArgument("ok action must not be nil"))
	}
	if r.ok {
		action(r.value)
	}
	return r
}

// OnErr invokes action with the held error on Err and does nothing on
// Ok, returning the receiver either way. A nil action panics with
// InvalidArgument regardless of variant.
func (r Result[T]) OnErr(action func(error)) Result[T] {
	if action == nil {
		panic(invalidArgument("err action must not be nil"))
	}
	if !r.ok {
		action(r.err)
	}
	return r
}

// On invokes exactly one of the two actions, chosen by variant, and
// returns the receiver. Both actions are validated before dispatch, so a
// nil action panics even when it would not have been invoked.
func (r Result[T]) On(okAction func(T), errAction func(error)) Result[T] {
	if okAction == nil {
		panic(invalidArgument("ok action must not be nil"))
	}
	if errAction == nil {
		panic(invalidArgument("err action must not be nil"))
	}
	if r.ok {
		okAction(r.value)
	} else {
		errAction(r.err)
	}
	return r
}

// Unwrap returns the held value and error as a conventional Go pair. On
// Ok the error is nil; on Err the value is the zero value. Total, never
// panics.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Equal reports whether both results hold the same variant and equal
// items. Errors are compared by identity first, then by deep equality;
// values by deep equality.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	if r.err == other.err {
		return true
	}
	return reflect.DeepEqual(r.err, other.err)
}

// Hash derives a hash from the held item alone, so two results hashing
// alike hold items that format alike.
func (r Result[T]) Hash() uint64 {
	h := fnv.New64a()
	if r.ok {
		fmt.Fprintf(h, "%v", r.value)
	} else {
		fmt.Fprintf(h, "%v", r.err)
	}
	return h.Sum64()
}

// String renders the result for debugging, as Ok[value] or Err[error].
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok[%v]", r.value)
	}
	return fmt.Sprintf("Err[%v]", r.err)
}
