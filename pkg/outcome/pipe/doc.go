// Package pipe lifts Result values over channels for simple fan-out/fan-in
// flows.
//
// Common usage:
// - Emit: values -> channel of success Results
// - Run: apply a stage function with a fixed number of workers
// - Finalize: map Result[In, E] to Out on completion
// - Collect: drain an output channel into a slice
//
// Every Result travels through exactly one worker at a time; the package
// adds no sharing and therefore no locking around the values themselves.
package pipe
