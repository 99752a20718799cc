package outcome

import "time"

type Provider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Checker defines an interface for types that discriminate success from failure
type Checker[T any] interface {
	Provider[T]
	// IsErr returns true if the operation failed
	IsErr() bool
	// IsValid returns true iff IsErr returns false
	IsValid() bool
}

// Tracer extends Checker with an observational call-site trace
type Tracer[T any] interface {
	Checker[T]
	// Trace returns accumulated trace labels, innermost first
	Trace() []string
}
