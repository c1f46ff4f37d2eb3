package rop

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/nuclear/pkg/rop/monad"
)

type ResultProvider[T any] interface {
	monad.Fallible[T]
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// Id identifies the result; forwarded failures keep the id of their origin
	Id() uuid.UUID
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ WithError[int] = Result[int]{}
