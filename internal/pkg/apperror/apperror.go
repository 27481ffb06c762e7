package apperror

import "errors"

// Kind classifies an operation failure so the transport layer can pick a
// status code without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidArgument covers malformed id relationships, content that
	// violates the size/non-null invariant, and patches touching immutable
	// fields. Never retried; no partial mutation occurred.
	KindInvalidArgument
	// KindNotFound is returned when an operation targets a nonexistent id and
	// existence is required. Delete is deliberately exempt.
	KindNotFound
	// KindStorageFailure wraps persistence failures (constraint violations,
	// connectivity) opaquely, with no automatic retry.
	KindStorageFailure
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidArgument(message string) *AppError {
	return &AppError{Kind: KindInvalidArgument, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewStorageFailure(err error) *AppError {
	return &AppError{Kind: KindStorageFailure, Message: "storage failure", Err: err}
}

// KindOf extracts the classification from err, KindUnknown if it carries none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}
