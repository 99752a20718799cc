// Package chain provides a fluent wrapper over Result[T, error] for
// synchronous composition.
//
// Common usage:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects on success only
// - Label: record a trace label at a chain boundary
// - Finally: reduce to a concrete value via handlers
//
// Payload type switches (Then, ThenTry, Map) are package-level functions
// because methods cannot introduce type parameters.
package chain
