// Package chainer defines the provider interfaces satisfied by the
// extended-variant chain wrappers.
//
// The chaining operations live in the variant subpackages:
// - basic: a chain call returns only the subject pointer
// - results: a chain call returns a wrapper retaining the step's result
//
// A program imports exactly one variant. The variants duplicate the same
// surface and share no code, so selecting one never pulls in the other.
package chainer
