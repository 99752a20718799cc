package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result outcome.Result[T, error]
}

// Start creates a new chain from an outcome.Result
func Start[T any](ctx context.Context, result outcome.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: outcome.Ok[T, error](value),
	}
}

// Result returns the underlying outcome.Result
func (c *Chain[T]) Result() outcome.Result[T, error] {
	return c.result
}

// Then chains a function that returns outcome.Result[U, error]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) outcome.Result[U, error]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result outcome.Result[T, error]) {
				if result.IsValid() {
					onSuccess(ctx, result.Value())
				}
			}),
	}
}

// Label records a trace label at this chain boundary. The label is appended
// regardless of success or failure and never changes the outcome.
func (c *Chain[T]) Label(label string) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: c.result.Traced(label),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure)
}
