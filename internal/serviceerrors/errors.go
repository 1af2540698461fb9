// Package serviceerrors defines the application error taxonomy. Every error
// returned by the service layer is (or wraps into) an AppError carrying the
// HTTP status code and the client-safe message for the JSON error body.
package serviceerrors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Msg  string
	Code int
	Base error
}

func NewValidation(msg string) *AppError {
	return &AppError{Msg: msg, Code: http.StatusBadRequest}
}

func NewDuplicateEmail() *AppError {
	return &AppError{Msg: "Email already registered", Code: http.StatusBadRequest}
}

func NewInvalidCredentials() *AppError {
	return &AppError{Msg: "Invalid credentials", Code: http.StatusUnauthorized}
}

func NewUnauthorized() *AppError {
	return &AppError{Msg: "Unauthorized", Code: http.StatusUnauthorized}
}

func NewInvalidToken() *AppError {
	return &AppError{Msg: "Invalid token", Code: http.StatusUnauthorized}
}

func NewDuplicateItem() *AppError {
	return &AppError{Msg: "Pokemon already in collection", Code: http.StatusBadRequest}
}

func NewNotFoundOrUnauthorized() *AppError {
	return &AppError{Msg: "Item not found or unauthorized", Code: http.StatusBadRequest}
}

func NewNotFound(msg string) *AppError {
	return &AppError{Msg: msg, Code: http.StatusNotFound}
}

func NewInternal(base error) *AppError {
	return &AppError{Msg: "Internal server error", Code: http.StatusInternalServerError, Base: base}
}

// FromError returns the AppError inside err, or wraps err as an internal error.
func FromError(err error) *AppError {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return NewInternal(err)
	}
	return appErr
}

func (e *AppError) IsInternal() bool {
	return e.Code/100 == 5
}

// Wrap attaches the underlying cause for logging; the client message is unchanged.
func (e *AppError) Wrap(base error) *AppError {
	e.Base = base
	return e
}

// Is matches AppErrors by code and message so constructed instances compare
// equal under errors.Is.
func (e *AppError) Is(target error) bool {
	var targetErr *AppError
	if !errors.As(target, &targetErr) {
		return false
	}
	return targetErr.Code == e.Code && targetErr.Msg == e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Base
}

func (e *AppError) Error() string {
	return e.Msg
}
