// Package observe provides opt-in consumers for the per-chain observer hook:
// a Recorder that collects pre-transform snapshots for tests and debugging,
// and a zerolog adapter that logs them as structured events.
package observe
