package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport means no response was received at all.
	ErrTransport = errors.New("transport error")
	// ErrInvalidResponse means a 2xx body could not be decoded.
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError is the normalized form of every failed call. Detail and Message
// hold the server's "detail" and "message" fields when it sent them. For
// transport failures Status is 0 and Message is the underlying error text.
type APIError struct {
	Status  int
	Detail  string
	Message string

	err error
}

// NewAPIError builds the error for an HTTP response with the given status.
// It wraps the sentinel matching status, or ErrUnexpectedStatus.
func NewAPIError(status int, detail, message string) *APIError {
	return &APIError{Status: status, Detail: detail, Message: message, err: sentinelFor(status)}
}

// NewTransportError builds the error for a call that got no response.
func NewTransportError(cause error) *APIError {
	return &APIError{Message: cause.Error(), err: ErrTransport}
}

func (e *APIError) Error() string {
	text := e.Detail
	if text == "" {
		text = e.Message
	}
	if text == "" && e.Status != 0 {
		text = http.StatusText(e.Status)
	}
	if e.Status == 0 {
		return fmt.Sprintf("%v: %s", e.err, text)
	}
	return fmt.Sprintf("%v (http %d): %s", e.err, e.Status, text)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *APIError) Unwrap() error {
	return e.err
}

// Reason returns the most specific human-readable text the error carries:
// detail, then message, then "".
func (e *APIError) Reason() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}
