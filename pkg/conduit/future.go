package conduit

import (
	"context"
	"sync"
)

// Future is a settle-once pending computation. Once settled, its value and
// error never change; repeated awaits return the cached outcome.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// NewFuture returns an unsettled future together with its settle function.
// Only the first settle call takes effect.
func NewFuture[T any]() (*Future[T], func(v T, err error)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.settle
}

// Settled returns a future already resolved to v. Wrapping an already-settled
// value this way is safe and idempotent.
func Settled[T any](v T) *Future[T] {
	f, settle := NewFuture[T]()
	settle(v, nil)
	return f
}

// Rejected returns a future already failed with err.
func Rejected[T any](err error) *Future[T] {
	f, settle := NewFuture[T]()
	var zero T
	settle(zero, err)
	return f
}

// Go runs fn in its own goroutine and returns a future settled with its
// outcome. A panic inside fn rejects the future with a *PanicError.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f, settle := NewFuture[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				settle(zero, &PanicError{Value: r})
			}
		}()
		v, err := fn(ctx)
		settle(v, err)
	}()
	return f
}

func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		f.val = v
		f.err = err
		close(f.done)
	})
}

// Done is closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx expires. Expiry abandons the
// wait only; the underlying computation keeps running to completion.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
