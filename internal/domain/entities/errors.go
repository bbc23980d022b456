package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every DomainError unwraps to exactly one of them, so callers
// classify failures with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrReferenceNotFound = errors.New("reference not found")
	ErrDomainRuleBroken  = errors.New("domain rule broken")
	ErrUnexpected        = errors.New("unexpected error")
)

// DomainError carries a human-readable message and its categorical kind.
type DomainError struct {
	kind    error
	message string
	cause   error
}

func (e *DomainError) Error() string {
	return e.message
}

// Kind returns the sentinel this error belongs to.
func (e *DomainError) Kind() error {
	return e.kind
}

func (e *DomainError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

func newDomainError(kind error, format string, args ...any) *DomainError {
	return &DomainError{kind: kind, message: fmt.Sprintf(format, args...)}
}

func NewInvalidInput(format string, args ...any) *DomainError {
	return newDomainError(ErrInvalidInput, format, args...)
}

func NewResourceNotFound(format string, args ...any) *DomainError {
	return newDomainError(ErrResourceNotFound, format, args...)
}

func NewReferenceNotFound(format string, args ...any) *DomainError {
	return newDomainError(ErrReferenceNotFound, format, args...)
}

func NewDomainRuleBroken(format string, args ...any) *DomainError {
	return newDomainError(ErrDomainRuleBroken, format, args...)
}

// NewUnexpected hides cause behind a generic message. The cause stays reachable
// through errors.Is / errors.As for logging.
func NewUnexpected(cause error) *DomainError {
	return &DomainError{kind: ErrUnexpected, message: "unexpected error", cause: cause}
}

// IsDomainError reports whether err already carries a classified kind.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
