package chain

import (
	"github.com/ib-77/nuclear/pkg/rop"
	"github.com/ib-77/nuclear/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: rop.Success(value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		result: solo.Switch[T, U](c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: solo.Try[T, U](c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{
		result: solo.Map[T, U](c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{
		result: solo.Tee[T](c.result,
			func(result rop.Result[T]) {
				onSuccess(result.Result())
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally[T, U](c.result, onSuccess, onFailure)
}
