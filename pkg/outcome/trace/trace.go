package trace

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/lift"
)

// WrapOk normalizes v into a success Result per the lift rules, reusing an
// existing Result[T, E] in place, and appends label to its trace. The label
// is always caller-supplied; nothing is inferred from the runtime.
func WrapOk[T, E any](v any, label string) outcome.Result[T, E] {
	return lift.AbsorbOk[T, E](v).Traced(label)
}

// WrapErr is the failure counterpart of WrapOk.
func WrapErr[T, E any](v any, label string) outcome.Result[T, E] {
	return lift.AbsorbErr[T, E](v).Traced(label)
}
