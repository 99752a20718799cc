package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Emit turns values into a channel of success Results. The channel is closed
// once all values are sent or the context is done.
func Emit[T, E any](ctx context.Context, values ...T) <-chan outcome.Result[T, E] {
	out := make(chan outcome.Result[T, E])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- outcome.Ok[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Run fans the input channel out to a fixed number of workers, each applying
// stage to every Result it receives. The returned channel is closed after
// all workers drain. Each Result flows through exactly one worker, so no
// value is ever shared between chains.
func Run[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E],
	stage func(ctx context.Context, input outcome.Result[In, E]) outcome.Result[Out, E],
	workers int) <-chan outcome.Result[Out, E] {

	out := make(chan outcome.Result[Out, E])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-ctx.Done():
					return
				case r, ok := <-in:
					if !ok {
						return
					}

					select {
					case out <- stage(ctx, r):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Finalize reduces a Result stream to plain values via solo.Finally.
func Finalize[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, e E) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				select {
				case out <- solo.Finally(ctx, r, onSuccess, onFailure):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Collect drains a channel into a slice, stopping early when the context is
// done.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
