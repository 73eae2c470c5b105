// Package usecase holds the application orchestration layer: one type per
// operation, each converting primitive input into domain value objects,
// invoking exactly one domain-service call, committing through the unit of
// work and reporting the outcome as a tagged result.
//
// A result carries either an output or a single failure; errors never escape
// a use case. The HTTP handlers act as presenters over the failure kinds.
package usecase

// FailureKind classifies a use-case failure for the presentation boundary.
type FailureKind int

const (
	// FailureNotFound: a referenced aggregate does not exist.
	FailureNotFound FailureKind = iota + 1
	// FailureConflict: the aggregate exists but its state disallows the
	// operation.
	FailureConflict
	// FailureInvalidInput: malformed input or an invalid transition.
	FailureInvalidInput
)

func (k FailureKind) String() string {
	switch k {
	case FailureNotFound:
		return "not_found"
	case FailureConflict:
		return "conflict"
	case FailureInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Failure is the failed half of a use-case result. Message is always
// non-empty and safe to surface to the caller.
type Failure struct {
	Kind    FailureKind
	Message string
}

func failure(kind FailureKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}
