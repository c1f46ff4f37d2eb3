/*
Package nuclear sequences a contrived three-step workflow (arm, aim, launch) in
four styles:

  - Throws: Go (value, error) returns with early exit on the first error
  - Optional: option.Option values, absence short-circuits
  - Outcome: rop.Result values, the first failure is forwarded unchanged
  - Attack/Strike: one generic pipeline over any monad.Shape family

Every sequencer is configured by optional step callbacks; a nil callback falls
back to the fixed behaviour of its style, so the zero value is ready to use.
*/
package nuclear

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nuclear'.
func tracer() tracing.Trace {
	return tracing.Select("nuclear")
}
