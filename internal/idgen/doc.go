// Package idgen generates the opaque identifiers attached to spawned threads
// and queued messages. Tests may replace NewFunc to get deterministic IDs.
package idgen
