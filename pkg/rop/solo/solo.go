package solo

import (
	"github.com/ib-77/nuclear/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Switch[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {
	return rop.Shape[In, Out]{}.Chain(input, onSuccess)
}

func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Result())
		return rop.FromTuple(out, err)
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](input rop.Result[T],
	onSuccess func(r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func DoubleTee[T any](input rop.Result[T],
	onSuccess func(r T),
	onError func(err error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Result())
		}
	} else if onError != nil {
		onError(input.Err())
	}

	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
