// Package launcher starts detached OS threads that run a callable exactly
// once.
//
// Spawn acquires one reference on the callable handle, asks a ThreadCreator
// for a new thread bound to the trampoline and returns without waiting. The
// trampoline invokes the callable, reports any failure to the error sink and
// releases the reference before the thread exits, whatever the outcome.
// Nothing in this package ever joins a spawned thread.
package launcher
