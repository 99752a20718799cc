// Package solo contains single-value, synchronous primitives that operate
// on Result[T, E]. Every hop in a pipeline built from them is an explicit
// decision: act on a valid Result or pass the failure through unchanged.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/DoubleMap: transform successful values (with an optional failure tap)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
//
// Pass-through failures keep their identity and trace across payload type
// switches, so a trail recorded deep in a chain survives to the top.
package solo
