package basic

// Chain invokes step once with a shared view of subject and returns the
// same subject pointer for further chaining. The step's return value is
// discarded. Steps passed to Chain must not mutate the subject; Go has no
// read-only pointers, so the shared borrow is a contract, not a check.
func Chain[S, R any](subject *S, step func(s *S) R) *S {
	step(subject)
	return subject
}

// ChainMut invokes step once with exclusive access to subject and returns
// the same subject pointer for further chaining. The step may mutate the
// subject; its return value is discarded.
func ChainMut[S, R any](subject *S, step func(s *S) R) *S {
	step(subject)
	return subject
}
