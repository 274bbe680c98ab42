// Package policy provides optional admission rules evaluated by the launcher
// before it acquires a callable and creates a thread.
package policy
