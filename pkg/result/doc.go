// Package result provides a two-variant container, Ok or Err, used as a
// method return type in place of raising errors through panics or bare
// (value, error) pairs. A Result always holds exactly one present item:
// an Ok value or an Err error, both guaranteed non-nil.
//
// Key constructs:
// - Ok/Err/Done/Of: construct a Result[T]
// - IsOk/IsErr: variant predicates
// - Get/GetOr/GetOrElse/Unwrap: extract the value
// - Error/ErrorMessage/PrintErrorMessage: extract the error
// - OnOk/OnErr/On: side effects that return the receiver for chaining
// - Map/MapOr: compose Results or collapse one into a plain value
//
// Carried errors never propagate on their own; callers branch on them
// explicitly. Contract violations — nil arguments, or extracting from
// the wrong variant — panic with a *Violation instead of producing an
// Err, keeping programmer errors apart from business failures.
package result
