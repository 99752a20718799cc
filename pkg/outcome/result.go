// Package outcome provides a two-variant Result value for recoverable
// error propagation without exceptions: either a success payload T or a
// failure payload E, discriminated by a variant tag.
package outcome

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success payload or a failure payload. The variant
// tag is set once by a constructor; there is no way to populate both slots
// through the public API. The trace is the only state that grows after
// construction, and Traced grows it by returning a copy.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	ok        bool
	hasValue  bool
	trace     []string
}

// Ok returns a success Result carrying v. The payload is always considered
// meaningful, even when v is the zero value of T.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		ok:        true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err returns a failure Result carrying e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		failure:   e,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// UnitOk returns a success Result with no payload beyond the success itself.
// It stands in for a void-like success: IsOk holds even though the value
// slot is the zero value of T.
func UnitOk[T, E any]() Result[T, E] {
	return Result[T, E]{
		ok:        true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// UnitErr returns a failure Result with a zero failure payload.
func UnitErr[T, E any]() Result[T, E] {
	return Result[T, E]{
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// StrictOk returns a success Result carrying v, but marks the payload
// meaningful only when v is non-zero. A zero v therefore fails IsOk while
// still passing IsValid. Use Ok unless a call site needs that distinction.
func StrictOk[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		ok:        true,
		hasValue:  !IsZero(v),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OkFrom returns a success Result carrying v while preserving the identity,
// creation time and trace of from. It is the success counterpart used by
// combinators when a payload changes type mid-chain.
func OkFrom[In, Out, E any](from Result[In, E], v Out) Result[Out, E] {
	return Result[Out, E]{
		value:     v,
		ok:        true,
		hasValue:  true,
		createdAt: from.createdAt,
		id:        from.id,
		trace:     from.trace,
	}
}

// ErrFrom re-types a failed Result across a payload switch, preserving the
// failure, identity, creation time and trace.
func ErrFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		failure:   from.failure,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
		trace:     from.trace,
	}
}

// Value returns the success payload (zero value on a failed Result).
func (r Result[T, E]) Value() T {
	return r.value
}

// Failure returns the failure payload (zero value on a success Result).
func (r Result[T, E]) Failure() E {
	return r.failure
}

// Unpack returns both slots; exactly one of them is meaningful.
func (r Result[T, E]) Unpack() (T, E) {
	return r.value, r.failure
}

// MustValue returns the success payload and panics on a failed Result.
func (r Result[T, E]) MustValue() T {
	if !r.ok {
		panic(r.failure)
	}
	return r.value
}

// IsOk reports whether the Result is a success with a meaningful payload.
// A success constructed via StrictOk from a zero value fails this check;
// such call sites should use IsValid instead.
func (r Result[T, E]) IsOk() bool {
	return r.ok && r.hasValue
}

// IsErr reports whether the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsValid is the exact complement of IsErr: true for every success,
// including one whose payload is a zero value.
func (r Result[T, E]) IsValid() bool {
	return r.ok
}

// HasValue reports whether the success slot holds a meaningful payload.
func (r Result[T, E]) HasValue() bool {
	return r.hasValue
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports whether r is a zero Result that never went through a
// constructor.
func (r Result[T, E]) IsEmpty() bool {
	return r.id == uuid.UUID{}
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// Traced returns the same logical Result with label appended to its trace.
// The trace backing array is reallocated, so the receiver and the returned
// Result never alias. Labels are kept in append order, the first label being
// the deepest call site; nothing is deduplicated or capped.
func (r Result[T, E]) Traced(label string) Result[T, E] {
	t := make([]string, 0, len(r.trace)+1)
	t = append(t, r.trace...)
	t = append(t, label)
	r.trace = t
	return r
}

// Trace returns a copy of the accumulated trace labels, innermost first.
func (r Result[T, E]) Trace() []string {
	if len(r.trace) == 0 {
		return nil
	}
	t := make([]string, len(r.trace))
	copy(t, r.trace)
	return t
}

// Snapshot is the exported debug view of a Result. Round-tripping a
// Snapshot through encoding/json reproduces both slots and the trace.
type Snapshot[T, E any] struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Ok        bool      `json:"ok"`
	HasValue  bool      `json:"has_value"`
	Value     T         `json:"value"`
	Failure   E         `json:"failure"`
	Trace     []string  `json:"trace,omitempty"`
}

// Snapshot returns the debug view of r.
func (r Result[T, E]) Snapshot() Snapshot[T, E] {
	return Snapshot[T, E]{
		Id:        r.id,
		CreatedAt: r.createdAt,
		Ok:        r.ok,
		HasValue:  r.hasValue,
		Value:     r.value,
		Failure:   r.failure,
		Trace:     r.Trace(),
	}
}

// String renders the snapshot as JSON for logging. Both payloads must be
// JSON-marshalable for the dump to be faithful.
func (r Result[T, E]) String() string {
	b, err := json.Marshal(r.Snapshot())
	if err != nil {
		return fmt.Sprintf("outcome: unserializable result %s", r.id)
	}
	return string(b)
}
