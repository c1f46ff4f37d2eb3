// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the building blocks of error-aware
// pipelines.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Switch: move from Result[In] to Result[Out] (flatMap)
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
//
// A failure passed into any of them is forwarded with its error and id intact.
package solo
