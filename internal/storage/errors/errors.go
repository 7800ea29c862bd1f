// Package errors provides custom errors for types implementing LinkStorage and UserStorage interfaces.
package errors

import (
	"fmt"
)

type (
	NotFoundError struct {
		SURL string
		Err  error
	}
	AlreadyExistsError struct {
		SURL string
		Err  error
	}
	ForbiddenError struct {
		SURL        string
		RequesterID string
		Err         error
	}
	EmailConflictError struct {
		Email string
		Err   error
	}
	UserNotFoundError struct {
		Key string
		Err error
	}
	ContextTimeoutExceededError struct {
		Err error
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found in storage", e.SURL)
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: already exists in storage", e.SURL)
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: operation forbidden for requester %q", e.SURL, e.RequesterID)
}

func (e *EmailConflictError) Error() string {
	return fmt.Sprintf("%s: email already registered", e.Email)
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("%s: user not found in storage", e.Key)
}

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *AlreadyExistsError) Unwrap() error {
	return e.Err
}

func (e *ForbiddenError) Unwrap() error {
	return e.Err
}

func (e *EmailConflictError) Unwrap() error {
	return e.Err
}

func (e *UserNotFoundError) Unwrap() error {
	return e.Err
}

func (e *ContextTimeoutExceededError) Unwrap() error {
	return e.Err
}
