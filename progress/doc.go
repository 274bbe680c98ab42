// Package progress keeps aggregated spawn counters for a launcher: how many
// threads were spawned, are running, completed, failed or were rejected.
package progress
