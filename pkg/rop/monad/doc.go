// Package monad unifies fallible wrapper shapes behind one compile-time
// interface so that a pipeline can be written once and run over any of them.
//
// Go has no higher-kinded types, so "the same wrapper around another element
// type" is spelled out as a pair of type parameters WA and WB, tied together
// by a zero-size shape witness S:
//
//	Wrap(b)      lift b into the holding state (unit)
//	Chain(wa, f) apply f when wa holds a value, else forward wa's failure
//	Map(wa, f)   Chain(wa, a -> Wrap(f(a)))
//
// Every witness names its family through Family(). A generic function that
// takes several witnesses with one shared family parameter F can only be
// instantiated with wrappers of that single family.
//
// The operations satisfy the monad laws for every family:
//
//   - left identity:  Chain(Wrap(x), f) ~ f(x)
//   - right identity: Chain(m, Wrap) ~ m
//   - associativity:  Chain(Chain(m, f), g) ~ Chain(m, x -> Chain(f(x), g))
package monad
