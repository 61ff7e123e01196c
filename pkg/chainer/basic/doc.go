// Package basic provides the default chaining variant: a chain call
// borrows the subject, runs one caller-supplied step, discards the step's
// return value and hands the subject pointer back for the next call.
//
// Key operations:
// - Chain: run a read-only step and return the subject
// - ChainMut: run a mutating step and return the subject
//
// For chains that need to keep the latest step's result, see package
// results.
package basic
