package conduit

import (
	"context"
	"errors"
	"testing"
)

func TestFromValue_Immediate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromValue(ctx, 7)
	if c.Mode() != Immediate {
		t.Fatalf("expected immediate mode, got: %v", c.Mode())
	}
	v, err := c.Get(ctx)
	if err != nil || v != 7 {
		t.Fatalf("expected 7, got: val=%v, err=%v", v, err)
	}
}

func TestFromFuture_Deferred(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromFuture(ctx, Settled(3))
	if c.Mode() != Deferred {
		t.Fatalf("expected deferred mode, got: %v", c.Mode())
	}
	v, err := c.Get(ctx)
	if err != nil || v != 3 {
		t.Fatalf("expected 3, got: val=%v, err=%v", v, err)
	}
}

func TestFromFunc_Deferred(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromFunc(ctx, func(ctx context.Context) (string, error) {
		return "async", nil
	})
	if c.Mode() != Deferred {
		t.Fatalf("expected deferred mode, got: %v", c.Mode())
	}
	v, err := c.Get(ctx)
	if err != nil || v != "async" {
		t.Fatalf("expected 'async', got: val=%v, err=%v", v, err)
	}
}

func TestGet_IdempotentWithoutReinvocation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	c := Pipe(FromFuture(ctx, Settled(1)), func(_ context.Context, in int, _ ...any) (int, error) {
		calls++
		return in + 1, nil
	})

	v1, err1 := c.Get(ctx)
	v2, err2 := c.Get(ctx)
	if err1 != nil || err2 != nil || v1 != 2 || v2 != 2 {
		t.Fatalf("expected 2 twice, got: %v/%v, %v/%v", v1, err1, v2, err2)
	}
	if calls != 1 {
		t.Fatalf("transformer should run exactly once per stage, ran %d times", calls)
	}
}

func TestCatch_DerivesNewContainer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromValue(ctx, 1)
	guarded := c.Catch(func(error) {})

	if c == guarded {
		t.Fatalf("Catch must derive a new container")
	}
	if c.Id() == guarded.Id() {
		t.Fatalf("derived container must carry its own id")
	}
	v, err := guarded.Get(ctx)
	if err != nil || v != 1 {
		t.Fatalf("payload must carry over, got: val=%v, err=%v", v, err)
	}
}

func TestCatch_HandlerNotInherited(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	calls := 0
	guarded := FromValue(ctx, 1).Catch(func(error) { calls++ })

	failed := guarded.Pipe(func(context.Context, int, ...any) (int, error) {
		return 0, boom
	})
	if calls != 1 {
		t.Fatalf("expected handler once for the guarded stage, got %d", calls)
	}

	// the produced container carries no handler; its failures are swallowed
	failed.Pipe(func(context.Context, int, ...any) (int, error) {
		return 0, boom
	})
	if calls != 1 {
		t.Fatalf("handler must not be inherited, got %d calls", calls)
	}
}

func TestCatch_NilHandlerIsSafe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 1).Catch(nil).Pipe(func(context.Context, int, ...any) (int, error) {
		return 0, errors.New("x")
	})
	if !out.IsUnset() {
		t.Fatalf("expected unset payload after swallowed failure")
	}
}

func TestContainer_ResolverSurface(t *testing.T) {
	t.Parallel()

	var _ Resolver[int] = FromValue(context.Background(), 1)
	var _ Stamped = FromValue(context.Background(), 1)
}
