package conduit

import "context"

// Transform is one stage's computation. Under the default convention it
// receives the chain context, the wrapped value, and any stage args. Under an
// invocation override it receives the override context, the zero In, and the
// override args.
type Transform[In, Out any] func(ctx context.Context, in In, args ...any) (Out, error)

// Fn adapts a plain context+value function to a Transform.
func Fn[In, Out any](f func(ctx context.Context, in In) (Out, error)) Transform[In, Out] {
	return func(ctx context.Context, in In, _ ...any) (Out, error) {
		return f(ctx, in)
	}
}

// Pure adapts a function that cannot fail.
func Pure[In, Out any](f func(in In) Out) Transform[In, Out] {
	return func(_ context.Context, in In, _ ...any) (Out, error) {
		return f(in), nil
	}
}

// Const is constant propagation: the "transform" is the constant itself.
func Const[In, Out any](v Out) Transform[In, Out] {
	return func(context.Context, In, ...any) (Out, error) {
		return v, nil
	}
}

// Invocation fully replaces the default argument-preparation rule for one
// stage: the transform is called with Context (Background when nil) and Args,
// and the wrapped value is not passed.
type Invocation struct {
	Context context.Context
	Args    []any
}

// StageOption configures a single stage.
type StageOption func(c *stageConfig)

type stageConfig struct {
	args []any
	inv  *Invocation
}

// WithArgs appends args after the wrapped value under the default convention.
func WithArgs(args ...any) StageOption {
	return func(c *stageConfig) {
		c.args = args
	}
}

// WithInvocation selects the override convention for one stage.
func WithInvocation(inv Invocation) StageOption {
	return func(c *stageConfig) {
		c.inv = &inv
	}
}

// Both pairs a stage's computed result with the pre-transform value.
type Both[R, O any] struct {
	Result   R
	Original O
}

// Pipe runs one transformation and wraps its result in a container of the
// same mode as src. Synchronous failures on an immediate source go to src's
// Catch handler and yield an unset payload; failures inside a deferred stage
// reject the pending computation instead and surface only at resolution.
func Pipe[In, Out any](src *Container[In], fn Transform[In, Out], opts ...StageOption) *Container[Out] {
	return run(src, fn, func(out Out, _ In) Out { return out }, false, opts)
}

// PipeKeep runs fn for its effect and keeps the pre-transform value,
// discarding the computed result.
func PipeKeep[In, Out any](src *Container[In], fn Transform[In, Out], opts ...StageOption) *Container[In] {
	return run(src, fn, func(_ Out, original In) In { return original }, false, opts)
}

// PipeBoth keeps the pair of computed result and pre-transform value.
func PipeBoth[In, Out any](src *Container[In], fn Transform[In, Out], opts ...StageOption) *Container[Both[Out, In]] {
	return run(src, fn, func(out Out, original In) Both[Out, In] {
		return Both[Out, In]{Result: out, Original: original}
	}, false, opts)
}

// PipeFuture lifts a future-returning transform. The stage awaits the inner
// future, and the produced container is always deferred, regardless of the
// source mode.
func PipeFuture[In, Out any](src *Container[In], fn func(ctx context.Context, in In) *Future[Out], opts ...StageOption) *Container[Out] {
	lifted := Transform[In, Out](func(ctx context.Context, in In, _ ...any) (Out, error) {
		f := fn(ctx, in)
		if f == nil {
			var zero Out
			return zero, nil
		}
		return f.Await(ctx)
	})
	return run(src, lifted, func(out Out, _ In) Out { return out }, true, opts)
}

// Map chains a pure type-changing transformation.
func Map[In, Out any](src *Container[In], fn func(ctx context.Context, in In) Out, opts ...StageOption) *Container[Out] {
	return Pipe(src, func(ctx context.Context, in In, _ ...any) (Out, error) {
		return fn(ctx, in), nil
	}, opts...)
}

// run is the transformation engine. shape decides the stage payload from the
// computed result and the pre-transform value; forceDefer marks operators
// that are unconditional deferral boundaries.
func run[In, Out, R any](src *Container[In], fn Transform[In, Out],
	shape func(out Out, original In) R, forceDefer bool, opts []StageOption) *Container[R] {

	cfg := stageConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	if src.mode == Immediate && !forceDefer {
		out := newContainer[R](src.ctx, Immediate, src.observe)
		src.observe(src.value)
		res, err := invoke(src.ctx, fn, src.value, cfg)
		if err != nil {
			src.onError(err)
			out.unset = true
			return out
		}
		out.value = shape(res, src.value)
		return out
	}

	out := newContainer[R](src.ctx, Deferred, src.observe)
	fut, settle := NewFuture[R]()
	out.future = fut
	go func() {
		var zero R
		in, err := src.Get(src.ctx)
		if err != nil {
			settle(zero, err)
			return
		}
		src.observe(in)
		res, err := invoke(src.ctx, fn, in, cfg)
		if err != nil {
			settle(zero, err)
			return
		}
		settle(shape(res, in), nil)
	}()
	return out
}

func invoke[In, Out any](ctx context.Context, fn Transform[In, Out], in In, cfg stageConfig) (out Out, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()

	if cfg.inv != nil {
		ictx := cfg.inv.Context
		if ictx == nil {
			ictx = context.Background()
		}
		var zero In
		return fn(ictx, zero, cfg.inv.Args...)
	}
	return fn(ctx, in, cfg.args...)
}
