package result

// Map applies transform to the held value and returns its Result
// directly; on Err it returns a new Err of the target type carrying the
// same error, untouched. A nil transform panics with InvalidArgument
// regardless of variant.
//
// Map is a top-level function because Go methods cannot introduce a
// second type parameter.
func Map[T, R any](r Result[T], transform func(T) Result[R]) Result[R] {
	if transform == nil {
		panic(invalidArgument("transform must not be nil"))
	}
	if !r.ok {
		return Result[R]{err: r.err}
	}
	return transform(r.value)
}

// MapOr collapses a Result into a plain value by applying okTransform to
// the value or errTransform to the error. Both transforms are validated
// before dispatch; the chosen transform's result must be non-nil.
func MapOr[T, R any](r Result[T], okTransform func(T) R, errTransform func(error) R) R {
	if okTransform == nil {
		panic(invalidArgument("ok transform must not be nil"))
	}
	if errTransform == nil {
		panic(invalidArgument("err transform must not be nil"))
	}
	var out R
	if r.ok {
		out = okTransform(r.value)
	} else {
		out = errTransform(r.err)
	}
	if isNil(out) {
		panic(invalidArgument("transform must not return nil"))
	}
	return out
}
