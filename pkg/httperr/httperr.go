// Package httperr defines the error taxonomy shared by handlers and
// middleware, and the single translation point from errors to HTTP responses.
package httperr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Code classifies an error for HTTP translation.
type Code string

const (
	CodeUnauthorized Code = "unauthorized"
	CodeInvalidInput Code = "invalid_input"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal"
)

// Error carries a classification plus a message that is safe to return to
// the caller. Anything that is not an *Error renders as an internal fault.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches an underlying cause. The cause is logged server-side but
// never serialized into the response body.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is lets callers match on classification: errors.Is(err, httperr.New(code, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// ToHTTPStatus maps an error code to its response status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Write translates any error into a JSON response. Client-fault codes render
// their own message; everything else renders the fixed internal message and
// the full cause goes to the log only. The logger is expected to be
// trace-scoped so server-side detail stays correlatable.
func Write(w http.ResponseWriter, log *slog.Logger, err error) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		writeMessage(w, ToHTTPStatus(appErr.Code), appErr.Message)
		return
	}
	if log != nil {
		log.Error("unhandled error", "error", err.Error())
	}
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
