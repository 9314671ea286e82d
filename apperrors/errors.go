package apperrors

import (
	"errors"
	"strings"
)

// Domain-rule violations. All map to 400 at the HTTP boundary.
var (
	ErrFollowItself       = errors.New("a profile cannot follow itself")
	ErrUnfollowOnCreation = errors.New("cannot unfollow a profile that was never followed")
	ErrAlertType          = errors.New("alert must reference exactly one of a post or a comment")
	ErrAlertStatusInvalid = errors.New("alert is already closed")
	ErrProfileBlocked     = errors.New("profile is blocked")
)

// ErrNotInProfileList means the authenticated account does not own the
// profile it is acting as. Maps to 403.
var ErrNotInProfileList = errors.New("profile does not belong to the authenticated account")

// ErrVersionConflict surfaces a lost optimistic-concurrency race. The write
// did not happen; the caller re-reads and retries. Maps to 409.
var ErrVersionConflict = errors.New("concurrent update detected, retry the request")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError carries one message per violated field constraint.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func Validation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
