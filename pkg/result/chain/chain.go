package chain

import (
	"github.com/ib-77/result/pkg/result"
)

// Chain wraps a Result for fluent synchronous composition. Every step
// short-circuits on Err, so the first failure flows to the end untouched.
type Chain[T any] struct {
	res result.Result[T]
}

func Start[T any](r result.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(result.Ok(v))
}

func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then composes functions that already return result.Result[T].
func (c Chain[T]) Then(onOk func(t T) result.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: onOk(c.res.Get())}
}

// ThenTry composes functions that return (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: result.Of(try(c.res.Get()))}
}

// Map transforms the held value without leaving the Ok track.
func (c Chain[T]) Map(onOk func(t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: result.Ok(onOk(c.res.Get()))}
}

// While keeps applying onOk as long as the chain is Ok and the predicate
// holds for the current value.
func (c Chain[T]) While(onOk func(t T) result.Result[T], while func(t T) bool) Chain[T] {
	for c.res.IsOk() && while(c.res.Get()) {
		c = c.Then(onOk)
	}
	return c
}

// Ensure triggers side effects for the active variant without changing
// the result. Nil handlers are skipped.
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.Error())
		}
		return c
	}
	if onOk != nil {
		onOk(c.res.Get())
	}
	return c
}

// Or keeps the receiver when it is Ok, otherwise the alternative when
// that one is Ok, otherwise the receiver's failure.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And keeps the receiver's failure when present, otherwise the required
// chain's outcome.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value via the variant handlers.
func (c Chain[T]) Finally(onOk func(t T) T, onErr func(err error) T) T {
	return result.MapOr(c.res, onOk, onErr)
}
