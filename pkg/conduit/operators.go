package conduit

import (
	"context"
	"time"
)

// Pipe is the same-type form of the package-level Pipe.
func (c *Container[T]) Pipe(fn Transform[T, T], opts ...StageOption) *Container[T] {
	return Pipe[T, T](c, fn, opts...)
}

// Tap invokes fn for its side effect and forwards the value unchanged.
func (c *Container[T]) Tap(fn func(ctx context.Context, v T)) *Container[T] {
	return c.Pipe(func(ctx context.Context, v T, _ ...any) (T, error) {
		fn(ctx, v)
		return v, nil
	})
}

// Map chains a pure same-type transformation.
func (c *Container[T]) Map(fn func(ctx context.Context, v T) T) *Container[T] {
	return c.Pipe(func(ctx context.Context, v T, _ ...any) (T, error) {
		return fn(ctx, v), nil
	})
}

// Filter substitutes the zero value for non-matching values. The chain never
// terminates on a filtered value; it carries the zero value forward.
func (c *Container[T]) Filter(pred func(ctx context.Context, v T) bool) *Container[T] {
	return c.Pipe(func(ctx context.Context, v T, _ ...any) (T, error) {
		if pred(ctx, v) {
			return v, nil
		}
		var zero T
		return zero, nil
	})
}

// When evaluates cond fresh on each execution and runs then or els; a nil els
// forwards the value unchanged. The chosen branch flows under the usual stage
// rules (mode propagation, failure isolation).
func (c *Container[T]) When(cond func(ctx context.Context, v T) bool,
	then func(ctx context.Context, v T) (T, error),
	els func(ctx context.Context, v T) (T, error), opts ...StageOption) *Container[T] {

	return c.Pipe(func(ctx context.Context, v T, _ ...any) (T, error) {
		if cond(ctx, v) {
			return then(ctx, v)
		}
		if els != nil {
			return els(ctx, v)
		}
		return v, nil
	}, opts...)
}

// Always adapts a plain boolean condition to a When predicate.
func Always[T any](b bool) func(ctx context.Context, v T) bool {
	return func(context.Context, T) bool { return b }
}

// Delay is an unconditional deferral boundary: it awaits the source, waits d
// on a timer, and forwards the value unchanged. A source rejection propagates
// without waiting.
func (c *Container[T]) Delay(d time.Duration) *Container[T] {
	return run(c, Transform[T, T](func(_ context.Context, v T, _ ...any) (T, error) {
		t := time.NewTimer(d)
		defer t.Stop()
		<-t.C
		return v, nil
	}), func(out T, _ T) T { return out }, true, nil)
}

// Retry re-observes the already-settled source outcome up to attempts times.
// It never re-runs the computation that produced the value, so a rejection is
// re-observed on every attempt and the last attempt re-raises it.
func (c *Container[T]) Retry(attempts int) *Container[T] {
	out := newContainer[T](c.ctx, Deferred, c.observe)
	fut, settle := NewFuture[T]()
	out.future = fut
	go func() {
		if attempts < 1 {
			attempts = 1
		}
		var v T
		var err error
		for i := 0; i < attempts; i++ {
			v, err = c.Get(c.ctx)
			if err == nil {
				break
			}
		}
		settle(v, err)
	}()
	return out
}
