// Package conduit provides a fluent single-value pipeline built on a
// Container[T] that is either immediate (settled value) or deferred (pending
// computation), with one uniform resolution operation for both modes.
//
// Key operations:
// - FromValue/FromFuture/FromFunc: construct a container, fixing its mode
// - Pipe/PipeKeep/PipeBoth: run one transformation with explicit result shaping
// - PipeFuture: lift a future-returning transform, always deferring
// - Tap/Map/Filter/When: value-level helpers expressed through Pipe
// - Delay/Retry: timer suspension and settled-outcome re-observation
// - Catch: derive a container with a synchronous-failure handler
// - Get: resolve the payload (blocks only for deferred containers)
package conduit
