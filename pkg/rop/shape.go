package rop

import "github.com/ib-77/nuclear/pkg/rop/monad"

// Family marks the Result wrapper family.
type Family struct{}

// Shape is the monad witness for Result between element types A and B.
type Shape[A, B any] struct{}

func (Shape[A, B]) Family() Family {
	return Family{}
}

func (Shape[A, B]) Wrap(b B) Result[B] {
	return Success(b)
}

// Chain calls f on a success and forwards a failure unchanged, see FailFrom.
func (Shape[A, B]) Chain(r Result[A], f func(A) Result[B]) Result[B] {
	if r.isSuccess {
		return f(r.result)
	}
	return FailFrom[A, B](r)
}

var _ monad.Shape[Family, int, string, Result[int], Result[string]] = Shape[int, string]{}
