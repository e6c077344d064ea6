package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSession       = errors.New("no session")
	ErrProfileNotFound = errors.New("profile snapshot not found")
	ErrLocked          = errors.New("app is locked")
)

// NetworkError means no response was obtained. No state is mutated on a
// network error; callers may retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthorizationError is a 401-class rejection. The session layer absorbs
// it via refresh-and-retry; it only reaches callers once the refresh path
// is exhausted.
type AuthorizationError struct {
	Status  int
	Message string
}

func (e *AuthorizationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authorization rejected (status %d)", e.Status)
	}
	return fmt.Sprintf("authorization rejected (status %d): %s", e.Status, e.Message)
}

// ConflictReason classifies the server conflicts this layer knows how to
// converge instead of surfacing.
type ConflictReason string

const (
	ConflictAlreadyFollowing ConflictReason = "already_following"
	ConflictAlreadyRequested ConflictReason = "already_requested"
	ConflictNotFollowing     ConflictReason = "not_following"
	ConflictSelfFollow       ConflictReason = "self_follow"
	ConflictUnknown          ConflictReason = "unknown"
)

// ConflictError is a recognized business conflict ("already following",
// "cannot follow yourself", ...). Each reason has a defined convergence or
// no-op policy in the relationship cache.
type ConflictError struct {
	Reason  ConflictReason
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict (%s): %s", e.Reason, e.Message)
}

// ValidationError carries field-level detail for a malformed request,
// surfaced to the caller verbatim.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	if e.Message != "" {
		return e.Message + ": " + strings.Join(parts, ", ")
	}
	return strings.Join(parts, ", ")
}

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsAuthorizationError reports whether err is (or wraps) an AuthorizationError.
func IsAuthorizationError(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}

// ConflictReasonOf extracts the conflict classification from err, or
// ConflictUnknown when err is not a recognized conflict.
func ConflictReasonOf(err error) (ConflictReason, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Reason, true
	}
	return ConflictUnknown, false
}
