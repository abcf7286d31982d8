package conduit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Mode tags how a container carries its payload. It is fixed at construction;
// only explicit deferral boundaries (Delay, Retry, PipeFuture, FromFuture,
// FromFunc) produce deferred containers.
type Mode int

const (
	Immediate Mode = iota
	Deferred
)

func (m Mode) String() string {
	if m == Deferred {
		return "deferred"
	}
	return "immediate"
}

// Container wraps a single value that is either settled (immediate) or still
// being computed (deferred). Containers are immutable; every operation derives
// a new one.
type Container[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	ctx       context.Context
	mode      Mode
	value     T
	future    *Future[T]
	unset     bool
	onError   func(err error)
	observe   func(v any)
}

// Option configures a chain at construction time and is inherited by every
// container derived from it.
type Option func(c *chainConfig)

type chainConfig struct {
	observe func(v any)
}

// WithObserver installs a per-chain diagnostic callback invoked with the
// pre-transform value at the start of every stage. Advisory only.
func WithObserver(fn func(v any)) Option {
	return func(c *chainConfig) {
		c.observe = fn
	}
}

// FromValue starts an immediate chain from a settled value.
func FromValue[T any](ctx context.Context, v T, opts ...Option) *Container[T] {
	c := newContainer[T](ctx, Immediate, chainObserve(opts))
	c.value = v
	return c
}

// FromFuture starts a deferred chain from a pending computation.
func FromFuture[T any](ctx context.Context, f *Future[T], opts ...Option) *Container[T] {
	c := newContainer[T](ctx, Deferred, chainObserve(opts))
	if f == nil {
		var zero T
		f = Settled(zero)
	}
	c.future = f
	return c
}

// FromFunc starts a deferred chain by running fn in its own goroutine.
func FromFunc[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) *Container[T] {
	return FromFuture(ctx, Go(ctx, fn), opts...)
}

func chainObserve(opts []Option) func(v any) {
	cfg := chainConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg.observe
}

func newContainer[T any](ctx context.Context, mode Mode, observe func(v any)) *Container[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	if observe == nil {
		observe = func(any) {}
	}
	return &Container[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		ctx:       ctx,
		mode:      mode,
		onError:   func(error) {},
		observe:   observe,
	}
}

// Get resolves the payload. Immediate containers return it without blocking;
// deferred containers await settlement. Repeated calls return the same
// logical value; no transformer is ever re-invoked by resolution.
func (c *Container[T]) Get(ctx context.Context) (T, error) {
	if c.mode == Deferred {
		return c.future.Await(ctx)
	}
	return c.value, nil
}

// Catch derives a container whose subsequent immediate-mode stages deliver
// synchronous failures to handler. The handler is not inherited by containers
// those stages produce, and it never sees deferred rejections.
func (c *Container[T]) Catch(handler func(err error)) *Container[T] {
	out := *c
	out.id = uuid.New()
	out.createdAt = time.Now().UTC()
	if handler == nil {
		handler = func(error) {}
	}
	out.onError = handler
	return &out
}

func (c *Container[T]) Mode() Mode {
	return c.mode
}

// IsUnset reports whether the payload was discarded by failure isolation.
func (c *Container[T]) IsUnset() bool {
	return c.unset
}

func (c *Container[T]) Id() uuid.UUID {
	return c.id
}

// CreatedAt time of creation (UTC).
func (c *Container[T]) CreatedAt() time.Time {
	return c.createdAt
}
