package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T, E any](input T) outcome.Result[T, E] {
	return outcome.Ok[T, E](input)
}

func Fail[T, E any](e E) outcome.Result[T, E] {
	return outcome.Err[T, E](e)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) outcome.Result[T, error] {
	return AndValidate(ctx, Succeed[T, error](input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Result[T, error] {

	if input.IsValid() {

		if isValid, errMsg := validate(ctx, input.Value()); isValid {
			return input
		} else {
			return outcome.Err[T, error](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against the same input and joins the
// failures it collects. With breakOnError the first failure wins.
func ValidateAll[T any](
	ctx context.Context,
	input outcome.Result[T, error],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in outcome.Result[T, error]) outcome.Result[T, error]) outcome.Result[T, error] {

	if input.IsErr() {
		return input
	}

	var errs []error
	for _, f := range inputsF {
		if !outcome.IsNil(ctx.Err()) {
			break
		}

		if current := f(ctx, input); current.IsErr() {
			errs = append(errs, current.Failure())
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 0 {
		return input
	}
	return outcome.Err[T, error](errors.Join(errs...))
}

func Switch[In any, Out any, E any](ctx context.Context,
	input outcome.Result[In, E],
	onSuccess func(ctx context.Context, r In) outcome.Result[Out, E]) outcome.Result[Out, E] {

	if input.IsValid() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.ErrFrom[In, Out](input)
}

func Map[In any, Out any, E any](ctx context.Context,
	input outcome.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) outcome.Result[Out, E] {

	if input.IsValid() {
		return outcome.OkFrom(input, onSuccess(ctx, input.Value()))
	}
	return outcome.ErrFrom[In, Out](input)
}

func Tee[T, E any](ctx context.Context,
	input outcome.Result[T, E],
	onSuccess func(ctx context.Context, r outcome.Result[T, E])) outcome.Result[T, E] {

	if input.IsValid() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input outcome.Result[T, E],
	condition func(ctx context.Context, r outcome.Result[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r outcome.Result[T, E])) outcome.Result[T, E] {

	if input.IsValid() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input outcome.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, e E)) outcome.Result[T, E] {

	if input.IsValid() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Failure())
	}

	return input
}

func DoubleMap[In any, Out any, E any](ctx context.Context, input outcome.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, e E) Out) outcome.Result[Out, E] {

	if input.IsValid() {
		return outcome.OkFrom(input, onSuccess(ctx, input.Value()))
	}

	onFailure(ctx, input.Failure())

	return outcome.ErrFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input outcome.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Result[Out, error] {

	if input.IsValid() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return outcome.Err[Out, error](err)
		}

		return outcome.OkFrom(input, out)
	}

	return outcome.ErrFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input outcome.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) outcome.Result[T, error] {
	if input.IsValid() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return outcome.Err[T, error](err)
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input outcome.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, e E) Out) Out {

	if input.IsValid() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Failure())
}

func Join[T any](ctx context.Context,
	input outcome.Result[T, error],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current outcome.Result[T, error]) outcome.Result[T, error],
	inputsF ...func(ctx context.Context, in outcome.Result[T, error]) outcome.Result[T, error]) outcome.Result[T, error] {

	if len(inputsF) == 0 || concat == nil || !outcome.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !outcome.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsValid() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !outcome.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
