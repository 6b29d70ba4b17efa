package rxhttp

import (
	"errors"
	"fmt"
)

// ErrorCode classifies client errors.
type ErrorCode int

const (
	// ErrCodeInvalidArgument indicates caller misuse detected before any I/O.
	ErrCodeInvalidArgument ErrorCode = iota
	// ErrCodeTransport indicates a connectivity or I/O fault (connection
	// refused, timeout, read failure mid-body).
	ErrCodeTransport
	// ErrCodeService indicates a reachable server answered outside the
	// configured success range.
	ErrCodeService
	// ErrCodeStream indicates an in-band error line signalled by a streaming
	// response.
	ErrCodeStream
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeService:
		return "service"
	case ErrCodeStream:
		return "stream"
	default:
		return "unknown"
	}
}

// Error is a structured client error. Exactly one Error terminates any failed
// sequence.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 for non-service errors).
	StatusCode int
	// Message describes the error. For service errors this is the server's
	// status message.
	Message string
	// Line is the offending response line (stream errors only).
	Line string
	// Err is the underlying cause (transport errors only).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeService:
		return fmt.Sprintf("rxhttp: service returned %d with message %s", e.StatusCode, e.Message)
	case ErrCodeStream:
		return fmt.Sprintf("rxhttp: stream error line: %s", e.Line)
	default:
		return fmt.Sprintf("rxhttp: %s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidArgumentError creates an invalid-argument error.
func NewInvalidArgumentError(msg string) *Error {
	return &Error{Code: ErrCodeInvalidArgument, Message: msg}
}

// NewTransportError wraps a connectivity or I/O fault.
func NewTransportError(err error) *Error {
	return &Error{Code: ErrCodeTransport, Message: err.Error(), Err: err}
}

// NewServiceError creates an error from a non-success status line.
func NewServiceError(statusCode int, message string) *Error {
	return &Error{Code: ErrCodeService, StatusCode: statusCode, Message: message}
}

// NewStreamError creates an error for an in-band error line.
func NewStreamError(line string) *Error {
	return &Error{Code: ErrCodeStream, Line: line, Message: line}
}

// IsInvalidArgument checks if an error is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidArgument
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsService checks if an error is a service error.
func IsService(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeService
}

// IsStream checks if an error is a stream-protocol error.
func IsStream(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeStream
}

// StatusOf returns the HTTP status carried by a service error, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
