// Package errors provides custom errors for the service layer.
package errors

import "fmt"

type (
	ValidationError struct {
		Msg string
	}
	UnauthorizedError struct {
		Msg string
	}
	// CodeSpaceExhaustedError reports that the bounded collision retry in code
	// generation ran out of attempts. It signals a programming defect rather
	// than a recoverable outcome.
	CodeSpaceExhaustedError struct {
		Attempts int
	}
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceFoundNilGenerator struct {
		Msg string
	}
	ServiceFoundNilDirectory struct {
		Msg string
	}
	ServiceFoundNilProcessor struct {
		Msg string
	}
)

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *UnauthorizedError) Error() string {
	return e.Msg
}

func (e *CodeSpaceExhaustedError) Error() string {
	return fmt.Sprintf("no free short code found after %d attempts", e.Attempts)
}

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilGenerator) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilDirectory) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilProcessor) Error() string {
	return e.Msg
}
