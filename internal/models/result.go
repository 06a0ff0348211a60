package models

// ResultKind tags which variant a Result holds.
type ResultKind int

const (
	// KindSuccess carries a payload.
	KindSuccess ResultKind = iota
	// KindEmpty means no matching record exists.
	KindEmpty
	// KindFailure means a collaborator failed; see Failure and Err.
	KindFailure
)

// String returns the lowercase name of k.
func (k ResultKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindEmpty:
		return "empty"
	case KindFailure:
		return "failure"
	}
	return "unknown"
}

// FailureKind classifies a failed operation by the collaborator that failed.
type FailureKind string

const (
	FailureGeneration FailureKind = "generation"
	FailureStorage    FailureKind = "storage"
)

// Result is the outcome of one company operation: a payload, a valid empty
// state, or a collaborator failure. Empty is never an error.
type Result[T any] struct {
	Kind    ResultKind
	Payload T
	Failure FailureKind
	Err     error
}

// Success wraps a payload.
func Success[T any](payload T) Result[T] {
	return Result[T]{Kind: KindSuccess, Payload: payload}
}

// Empty reports that no matching record exists.
func Empty[T any]() Result[T] {
	return Result[T]{Kind: KindEmpty}
}

// Failure reports that a collaborator failed.
func Failure[T any](kind FailureKind, err error) Result[T] {
	return Result[T]{Kind: KindFailure, Failure: kind, Err: err}
}

// IsSuccess reports whether r carries a payload.
func (r Result[T]) IsSuccess() bool { return r.Kind == KindSuccess }

// IsEmpty reports whether r is the empty state.
func (r Result[T]) IsEmpty() bool { return r.Kind == KindEmpty }

// IsFailure reports whether r is a collaborator failure.
func (r Result[T]) IsFailure() bool { return r.Kind == KindFailure }
