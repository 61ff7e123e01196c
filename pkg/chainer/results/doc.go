// Package results provides the extended chaining variant: every chain
// call returns a wrapper that retains the result of the step just run
// while still pointing at the original subject.
//
// Key operations:
// - Chain/ChainMut: start a chain from any subject
// - Then/ThenMut: continue a chain, replacing the retained result
// - ThenShared: continue a mutable chain with a read-only step
// - Result/Subject: read the retained result or reach the subject
// - SetResult: overwrite the retained result of a mutable link
//
// Continuations are free functions rather than methods because each step
// may change the result type. A wrapper is stamped with a chain id when
// the chain starts; continuations carry the id forward, so one id
// identifies one chain end to end.
package results
