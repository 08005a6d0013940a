package result

import "reflect"

// ViolationKind discriminates the two classes of contract violations:
// absent arguments and wrong-variant extraction.
type ViolationKind string

const (
	InvalidArgument ViolationKind = "invalid argument"
	NoValuePresent  ViolationKind = "no value present"
)

// Violation is the panic value raised on a contract violation: a nil
// value, error, fallback or function passed to an operation, or an
// Ok-only/Err-only extraction called on the wrong variant. Violations are
// programmer errors; they are never converted into an Err value.
type Violation struct {
	Kind    ViolationKind
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

func invalidArgument(msg string) *Violation {
	return &Violation{Kind: InvalidArgument, Message: msg}
}

func noValuePresent(msg string) *Violation {
	return &Violation{Kind: NoValuePresent, Message: msg}
}

// isNil reports whether v is nil or wraps a nil pointer, map, slice,
// func, chan or interface. Values of non-nilable kinds are always present.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
