package monad

// Fallible is implemented by every wrapper shape holding values of type T.
type Fallible[T any] interface {
	// Holding returns the wrapped value and true when the wrapper is in the
	// holding state (present, success).
	Holding() (T, bool)
}

// Shape is the witness of one wrapper family F between element types A and B.
// WA wraps A, WB wraps B. Implementations are zero-size value types.
type Shape[F, A, B any, WA Fallible[A], WB Fallible[B]] interface {
	// Family names the wrapper family of this witness.
	Family() F
	// Wrap lifts b into the holding state.
	Wrap(b B) WB
	// Chain applies f to the value held by wa and returns its result as is.
	// A wa that holds nothing is forwarded as WB without calling f, keeping
	// whatever failure it carries.
	Chain(wa WA, f func(A) WB) WB
}

// Wrap lifts b into the holding state of S's family.
func Wrap[F, A, B any, WA Fallible[A], WB Fallible[B], S Shape[F, A, B, WA, WB]](b B) WB {
	var s S
	return s.Wrap(b)
}

// Chain sequences wa into f through S. f runs only when wa holds a value.
func Chain[F, A, B any, WA Fallible[A], WB Fallible[B], S Shape[F, A, B, WA, WB]](wa WA, f func(A) WB) WB {
	var s S
	return s.Chain(wa, f)
}

// Map transforms the value held by wa and rewraps it. It is Chain followed by
// Wrap, so it has the same short-circuit behaviour.
func Map[F, A, B any, WA Fallible[A], WB Fallible[B], S Shape[F, A, B, WA, WB]](wa WA, f func(A) B) WB {
	var s S
	return s.Chain(wa, func(a A) WB {
		return s.Wrap(f(a))
	})
}
