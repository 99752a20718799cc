package lift

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Ok normalizes an optional value into a success Result. With no argument it
// yields the unit success, so a void-like success still satisfies IsOk. With
// an argument the payload is recorded unconditionally; a zero payload is
// treated like the unit success under IsOk (permissive policy). Extra
// arguments beyond the first are ignored.
func Ok[T, E any](vs ...T) outcome.Result[T, E] {
	if len(vs) == 0 {
		return outcome.UnitOk[T, E]()
	}
	return outcome.Ok[T, E](vs[0])
}

// Err normalizes an optional failure into a failed Result. With no argument
// it yields the unit failure, which still satisfies IsErr.
func Err[T, E any](es ...E) outcome.Result[T, E] {
	if len(es) == 0 {
		return outcome.UnitErr[T, E]()
	}
	return outcome.Err[T, E](es[0])
}

// StrictOk opts out of the permissive policy: a zero payload is never
// promoted, so StrictOk(0).IsOk() is false while IsValid() remains true.
func StrictOk[T, E any](v T) outcome.Result[T, E] {
	return outcome.StrictOk[T, E](v)
}

// AbsorbOk normalizes v into a success Result. A v that is already a
// Result[T, E] is returned unchanged, never re-wrapped, so absorption is
// idempotent. A nil v yields the unit success. A v of any other type than T
// is programmer misuse and panics.
func AbsorbOk[T, E any](v any) outcome.Result[T, E] {
	switch in := v.(type) {
	case outcome.Result[T, E]:
		return in
	case nil:
		return outcome.UnitOk[T, E]()
	case T:
		return Ok[T, E](in)
	default:
		panic(fmt.Sprintf("outcome/lift: cannot absorb %T into a success slot", v))
	}
}

// AbsorbErr is the failure counterpart of AbsorbOk: pass through an existing
// Result[T, E], lift a payload of type E, panic on anything else.
func AbsorbErr[T, E any](v any) outcome.Result[T, E] {
	switch in := v.(type) {
	case outcome.Result[T, E]:
		return in
	case nil:
		return outcome.UnitErr[T, E]()
	case E:
		return Err[T](in)
	default:
		panic(fmt.Sprintf("outcome/lift: cannot absorb %T into a failure slot", v))
	}
}
