package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	res := outcome.Ok[int, error](5)

	out := Start(ctx, res).Result()
	if !out.IsValid() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: valid=%v, val=%v, err=%v", out.IsValid(), out.Value(), out.Failure())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsValid() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: valid=%v, val=%v, err=%v", out.IsValid(), out.Value(), out.Failure())
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Then(FromValue(ctx, "3"), func(_ context.Context, s string) outcome.Result[int, error] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return outcome.Err[int, error](err)
		}
		return outcome.Ok[int, error](n * 2)
	})

	out := c.Result()
	if !out.IsValid() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: valid=%v, val=%v, err=%v", out.IsValid(), out.Value(), out.Failure())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	called := false
	c := Then(Start(ctx, outcome.Err[int, error](err)), func(_ context.Context, n int) outcome.Result[int, error] {
		called = true
		return outcome.Ok[int, error](n + 1)
	})

	out := c.Result()
	if called {
		t.Fatalf("onSuccess must not be called when the chain already failed")
	}
	if !out.IsErr() || out.Failure().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: err=%v, failure=%v", out.IsErr(), out.Failure())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := ThenTry(FromValue(ctx, 10), func(_ context.Context, n int) (int, error) {
		return 0, errors.New("try-error")
	})

	out := c.Result()
	if !out.IsErr() || out.Failure().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: err=%v, failure=%v", out.IsErr(), out.Failure())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(FromValue(ctx, 4), func(_ context.Context, n int) int { return n * n }).Result()
	if !out.IsValid() || out.Value() != 16 {
		t.Fatalf("expected success with 16, got: valid=%v, val=%v", out.IsValid(), out.Value())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	FromValue(ctx, 8).Ensure(func(_ context.Context, n int) { seen = n })
	if seen != 8 {
		t.Fatalf("expected side effect with 8, got %v", seen)
	}

	Start(ctx, outcome.Err[int, error](errors.New("boom"))).
		Ensure(func(_ context.Context, _ int) { t.Fatalf("side effect must not run on failure") })
}

func TestLabel_AccumulatesAcrossSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(
		FromValue(ctx, 1).Label("start"),
		func(_ context.Context, n int) int { return n + 1 },
	).Label("mapped").Result()

	got := out.Trace()
	if len(got) != 2 || got[0] != "start" || got[1] != "mapped" {
		t.Fatalf("expected trace [start mapped], got %v", got)
	}
}

func TestLabel_KeptOnFailurePath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Then(
		FromValue(ctx, 1).Label("start"),
		func(_ context.Context, _ int) outcome.Result[int, error] {
			return outcome.Err[int, error](errors.New("boom"))
		},
	).Label("failed").Result()

	got := out.Trace()
	if len(got) != 1 || got[0] != "failed" {
		t.Fatalf("expected trace [failed] on the fresh failure, got %v", got)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(FromValue(ctx, 2),
		func(_ context.Context, n int) string { return strconv.Itoa(n) },
		func(_ context.Context, err error) string { return "failed" })
	if got != "2" {
		t.Fatalf("expected '2', got %q", got)
	}

	got = Finally(Start(ctx, outcome.Err[int, error](errors.New("boom"))),
		func(_ context.Context, n int) string { return strconv.Itoa(n) },
		func(_ context.Context, err error) string { return "failed" })
	if got != "failed" {
		t.Fatalf("expected 'failed', got %q", got)
	}
}
