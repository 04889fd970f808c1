package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrPrecondition = errors.New("precondition failed")
	ErrBusy         = errors.New("another operation is in progress")
	ErrTransport    = errors.New("backend request failed")
)

// ValidationError is a local rejection raised before any backend call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

type BusyError struct {
	Operation Operation
}

func (e *BusyError) Error() string {
	if e.Operation == "" {
		return ErrBusy.Error()
	}
	return fmt.Sprintf("%s (%s)", ErrBusy.Error(), e.Operation)
}

func (e *BusyError) Is(target error) bool {
	return target == ErrBusy
}

// TransportError carries a non-2xx status or, with StatusCode 0, a network failure.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("backend unreachable: %s", message)
	}
	return fmt.Sprintf("backend status %d: %s", e.StatusCode, message)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

var (
	errNoActiveDocument = &PreconditionError{Reason: "no active document"}
	errNoActiveQuiz     = &PreconditionError{Reason: "no active quiz"}
)

func NoActiveDocument() error {
	return errNoActiveDocument
}

func NoActiveQuiz() error {
	return errNoActiveQuiz
}

func QuestionOutOfRange(index, total int) error {
	return &PreconditionError{Reason: fmt.Sprintf("question %d does not exist (quiz has %d)", index+1, total)}
}
