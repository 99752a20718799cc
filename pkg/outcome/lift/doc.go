// Package lift contains the normalizing constructors that turn arbitrary
// inputs into a canonical Result[T, E].
//
// Highlights:
// - Ok/Err: optional-payload constructors with unit-sentinel substitution
// - StrictOk: the opt-out for call sites that must distinguish a zero payload
// - AbsorbOk/AbsorbErr: pass an existing Result through unchanged instead of
//   wrapping it again
//
// Absorption is idempotent: AbsorbOk(AbsorbOk(v)) and AbsorbOk(v) denote the
// same Result, identity included. Inputs that are neither a Result nor a
// payload of the right type panic, because they indicate a logic error at the
// call site rather than an operational failure.
package lift
