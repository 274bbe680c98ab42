// Package model holds the per-spawn record tracked by the launcher: the
// thread identity, the callable it runs and its lifecycle state.
package model
