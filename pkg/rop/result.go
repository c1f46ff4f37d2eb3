package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNilFailure replaces a nil error passed to Fail.
	ErrNilFailure = errors.New("rop: failure without error")
	// ErrForwardedSuccess is the reason of a FailFrom called on a success.
	ErrForwardedSuccess = errors.New("rop: success forwarded as failure")
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed result. A nil (or typed nil) err becomes ErrNilFailure,
// a failure never reads as success.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromTuple converts a (value, error) pair into a Result.
func FromTuple[T any](r T, err error) Result[T] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(r)
}

// FailFrom forwards a failed result to another element type. The error, id and
// creation time are those of from.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		return Fail[Out](ErrForwardedSuccess)
	}
	err := from.err
	if err == nil {
		err = ErrNilFailure
	}
	return Result[Out]{
		err:       err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) Holding() (T, bool) {
	return r.result, r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Fail(%v)", r.err)
}
