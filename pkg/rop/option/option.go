// Package option implements the present/absent wrapper shape. Absence carries
// no reason.
package option

import (
	"fmt"

	"github.com/ib-77/nuclear/pkg/rop"
	"github.com/ib-77/nuclear/pkg/rop/monad"
)

// Option represents presence or absence of a value of type T. The zero value is
// None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's common
// multi-return patterns (e.g. map lookups).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Holding is Get under the name shared by every wrapper shape.
func (o Option[T]) Holding() (T, bool) {
	return o.value, o.ok
}

// GetOrElse returns the contained value when present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Fold collapses the Option into a single value by selecting onNone when the
// Option is empty or applying onSome to the contained value.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the contained value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains the Option with another Option-valued function. fn is not
// called on None.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// ToResult converts an Option into a rop.Result, failing with err when the
// Option is None.
func (o Option[T]) ToResult(err error) rop.Result[T] {
	if o.ok {
		return rop.Success(o.value)
	}
	return rop.Fail[T](err)
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Family marks the Option wrapper family.
type Family struct{}

// Shape is the monad witness for Option between element types A and B.
type Shape[A, B any] struct{}

func (Shape[A, B]) Family() Family {
	return Family{}
}

func (Shape[A, B]) Wrap(b B) Option[B] {
	return Some(b)
}

func (Shape[A, B]) Chain(o Option[A], f func(A) Option[B]) Option[B] {
	return FlatMap(o, f)
}

var _ monad.Shape[Family, int, string, Option[int], Option[string]] = Shape[int, string]{}
