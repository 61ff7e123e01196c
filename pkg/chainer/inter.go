package chainer

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[R any] interface {
	// Result returns the retained result of the latest step
	Result() R
	// CreatedAt time of the latest link (UTC)
	CreatedAt() time.Time
}

// SubjectProvider exposes the subject a chain operates on.
type SubjectProvider[S any] interface {
	// Subject returns the pointer to the original subject
	Subject() *S
}

// Link combines result and subject access for one link of a chain.
type Link[S, R any] interface {
	ResultProvider[R]
	SubjectProvider[S]
	// Id returns the identity of the chain this link belongs to
	Id() uuid.UUID
}
