package results

import (
	"time"

	"github.com/google/uuid"
)

// Chained is one link of an immutable chain. It keeps the pointer to the
// original subject and owns the result of the latest step.
type Chained[S, R any] struct {
	subject   *S
	result    R
	id        uuid.UUID
	createdAt time.Time
}

// ChainedMut is one link of a mutable chain. Steps continuing it may
// mutate the subject, and the retained result itself is writable.
type ChainedMut[S, R any] struct {
	subject   *S
	result    R
	id        uuid.UUID
	createdAt time.Time
}

// Chain starts an immutable chain: step runs once against subject and its
// return value becomes the retained result. Steps must not mutate the
// subject.
func Chain[S, R any](subject *S, step func(s *S) R) Chained[S, R] {
	return Chained[S, R]{
		subject:   subject,
		result:    step(subject),
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// ChainMut starts a mutable chain: step runs once with exclusive access
// to subject and its return value becomes the retained result.
func ChainMut[S, R any](subject *S, step func(s *S) R) ChainedMut[S, R] {
	return ChainedMut[S, R]{
		subject:   subject,
		result:    step(subject),
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Then continues an immutable chain: step observes the same subject, the
// retained result is replaced, the chain id is carried over.
func Then[S, T, R any](c Chained[S, T], step func(s *S) R) Chained[S, R] {
	return Chained[S, R]{
		subject:   c.subject,
		result:    step(c.subject),
		id:        c.id,
		createdAt: time.Now().UTC(),
	}
}

// ThenMut continues a mutable chain with a step that may mutate the
// subject again.
func ThenMut[S, T, R any](c ChainedMut[S, T], step func(s *S) R) ChainedMut[S, R] {
	return ChainedMut[S, R]{
		subject:   c.subject,
		result:    step(c.subject),
		id:        c.id,
		createdAt: time.Now().UTC(),
	}
}

// ThenShared continues a mutable chain with a read-only step. Exclusive
// access covers shared access, so the chain proceeds immutably from the
// returned link.
func ThenShared[S, T, R any](c ChainedMut[S, T], step func(s *S) R) Chained[S, R] {
	return Chained[S, R]{
		subject:   c.subject,
		result:    step(c.subject),
		id:        c.id,
		createdAt: time.Now().UTC(),
	}
}

func (c Chained[S, R]) Result() R {
	return c.result
}

func (c Chained[S, R]) Subject() *S {
	return c.subject
}

func (c Chained[S, R]) Id() uuid.UUID {
	return c.id
}

func (c Chained[S, R]) CreatedAt() time.Time {
	return c.createdAt
}

func (c ChainedMut[S, R]) Result() R {
	return c.result
}

func (c ChainedMut[S, R]) Subject() *S {
	return c.subject
}

func (c ChainedMut[S, R]) Id() uuid.UUID {
	return c.id
}

func (c ChainedMut[S, R]) CreatedAt() time.Time {
	return c.createdAt
}

// SetResult overwrites the retained result in place without running a
// step.
func (c *ChainedMut[S, R]) SetResult(r R) {
	c.result = r
}
