// Package trace layers a synthetic call-chain trail onto Result values.
//
// Each layer of a call chain re-wraps the Result it received with WrapOk or
// WrapErr, passing its own label. The underlying Result is reused in place,
// so the labels accumulate on one value in strict append order: the first
// label is the deepest call site, the last is the outermost. There is no
// deduplication and no cap; deeply recursive chains grow the trail without
// bound.
//
// The trail is purely observational. It shows up in the Result's snapshot
// and String output and never influences IsOk, IsErr or IsValid.
package trace
