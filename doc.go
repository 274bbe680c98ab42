// Package threadstart lets an embedding host run a callback on a new,
// detached OS thread.
//
// The host builds a Service once and calls ThreadStart (or the
// "thread_start" entry of Methods) with any zero-argument callable:
//
//	srv := threadstart.New()
//	err := srv.ThreadStart(ctx, func() { work() })
//
// ThreadStart returns as soon as the thread exists. The callback runs exactly
// once; its failures go to the configured error sink, never back to the
// caller. Spawned threads are never joined.
package threadstart
