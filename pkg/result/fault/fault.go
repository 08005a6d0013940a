package fault

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates failure categories so callers can branch without
// parsing messages.
type Kind string

const (
	Unknown         Kind = "unknown"
	InvalidArgument Kind = "invalid_argument"
	NotFound        Kind = "not_found"
	Unavailable     Kind = "unavailable"
	Internal        Kind = "internal"
)

// Fault is a structured failure record: a discriminating kind, a
// human-readable message, and an identity stamped at construction.
// Faults compare by identity, so two faults with equal kinds and
// messages are still distinct failures.
type Fault struct {
	id   uuid.UUID
	kind Kind
	msg  string
	at   time.Time
}

func New(kind Kind, msg string) *Fault {
	return &Fault{
		id:   uuid.New(),
		kind: kind,
		msg:  msg,
		at:   time.Now().UTC(),
	}
}

func Newf(kind Kind, format string, args ...any) *Fault {
	return New(kind, fmt.Sprintf(format, args...))
}

// Error returns the human-readable message.
func (f *Fault) Error() string {
	return f.msg
}

// ID returns the identity assigned at construction.
func (f *Fault) ID() uuid.UUID {
	return f.id
}

// Kind returns the failure category.
func (f *Fault) Kind() Kind {
	return f.kind
}

// OccurredAt returns the UTC creation time.
func (f *Fault) OccurredAt() time.Time {
	return f.at
}

// KindOf returns the Kind of err if a Fault is found in its chain,
// otherwise Unknown.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.kind
	}
	return Unknown
}
