package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

const (
	// DefaultMessage is used when a failed exchange carries no caller supplied message
	DefaultMessage = "There was an error fetching the data"

	MetadataSeparator = ", "
	MetadataPrefix    = "metadata={"
	MetadataSuffix    = "}"
	CausePrefix       = "cause="
)

// Names identifying the origin of a failure
const (
	NameStatus     = "StatusError"
	NameDecode     = "DecodeError"
	NameTransport  = "TransportError"
	NameValidation = "ValidationError"
)

// Status is the fixed error-value shape returned to callers. Message is always set,
// every other field is optional and only populated by the origin that knows it.
type Status struct {
	Code     int               `json:"code,omitempty"`
	Message  string            `json:"message"`
	Hint     string            `json:"hint,omitempty"`
	Details  string            `json:"details,omitempty"`
	Name     string            `json:"name,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Error is a structured failure carrying the Status shape and an optional cause chain
type Error struct {
	Status
	cause error
}

// Error returns a human-readable error message with optional error chain
func (e *Error) Error() string {
	var msg strings.Builder

	if e.Code != 0 {
		msg.WriteString("code=")
		msg.WriteString(strconv.Itoa(e.Code))
		msg.WriteString(MetadataSeparator)
	}
	msg.WriteString("message=")
	msg.WriteString(e.Message)

	if e.Hint != "" {
		msg.WriteString(MetadataSeparator)
		msg.WriteString("hint=")
		msg.WriteString(e.Hint)
	}

	// Keys are sorted so the rendering is stable across calls
	if len(e.Metadata) > 0 {
		msg.WriteString(MetadataSeparator)
		msg.WriteString(MetadataPrefix)
		for i, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			if i > 0 {
				msg.WriteString(", ")
			}
			msg.WriteString(k)
			msg.WriteByte('=')
			msg.WriteString(e.Metadata[k])
		}
		msg.WriteString(MetadataSuffix)
	}

	if e.cause != nil {
		msg.WriteString(MetadataSeparator)
		msg.WriteString(CausePrefix)
		msg.WriteString(e.cause.Error())
	}

	return msg.String()
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithMetadata adds metadata to the error. Returns a new error instance to maintain immutability.
func (e *Error) WithMetadata(m map[string]string) *Error {
	if len(m) == 0 {
		return e
	}

	err := e.clone()
	if err.Metadata == nil {
		err.Metadata = make(map[string]string, len(m))
	}

	maps.Copy(err.Metadata, m)
	return err
}

// WithHint returns a copy of the error carrying hint
func (e *Error) WithHint(hint string) *Error {
	err := e.clone()
	err.Hint = hint
	return err
}

// WithDetails returns a copy of the error carrying details
func (e *Error) WithDetails(details string) *Error {
	err := e.clone()
	err.Details = details
	return err
}

// WithCause adds a cause to the error. Returns a new error instance to maintain immutability.
func (e *Error) WithCause(cause error) *Error {
	if cause == nil {
		return e
	}

	err := e.clone()
	err.cause = cause
	return err
}

// clone creates a shallow copy of the error while deep copying the metadata map
func (e *Error) clone() *Error {
	cp := *e
	if len(e.Metadata) > 0 {
		cp.Metadata = maps.Clone(e.Metadata)
	}
	return &cp
}

// Is reports whether err is an *Error with the same code, name and message
func (e *Error) Is(err error) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return e.Code == ge.Code && e.Name == ge.Name && e.Message == ge.Message
	}
	return false
}

// GetCode returns the error code, zero when the failure did not come from an HTTP status
func (e *Error) GetCode() int {
	return e.Code
}

// GetMessage returns the error message
func (e *Error) GetMessage() string {
	return e.Message
}

// GetHint returns the hint, the HTTP status text for status failures
func (e *Error) GetHint() string {
	return e.Hint
}

// GetMetadata returns a copy of the metadata to prevent external modification
func (e *Error) GetMetadata() map[string]string {
	if len(e.Metadata) == 0 {
		return nil
	}
	return maps.Clone(e.Metadata)
}

// GetCause returns the underlying cause of the error
func (e *Error) GetCause() error {
	return e.cause
}

// New creates a new error with the given code and formatted message
func New(code int, format string, args ...any) *Error {
	var message string
	if len(args) == 0 {
		message = format
	} else {
		message = fmt.Sprintf(format, args...)
	}

	return &Error{
		Status: Status{
			Code:    code,
			Message: message,
		},
	}
}

// NewWithMetadata creates a new error with metadata
func NewWithMetadata(code int, metadata map[string]string, format string, args ...any) *Error {
	err := New(code, format, args...)
	if len(metadata) > 0 {
		err.Metadata = maps.Clone(metadata)
	}
	return err
}

// FromError converts a generic error to *Error, keeping its message and chaining it as cause
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}

	return &Error{
		Status: Status{Message: err.Error()},
		cause:  err,
	}
}

// Wrap wraps an error with additional context while preserving the original error chain
// Returns nil if the input error is nil
func Wrap(err error, code int, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	return New(code, format, args...).WithCause(err)
}
