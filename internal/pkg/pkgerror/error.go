package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is wrapped by storage layers when a document does not exist.
var ErrNotFound = errors.New("resource not found")

// Type tells who is at fault: the server, or the caller.
type Type int

const (
	TypeServer Type = iota
	TypeBusiness
	TypeValidation
)

func (t Type) String() string {
	switch t {
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code selects the HTTP status an Error is rendered with.
type Code int

const (
	CodeInternal Code = iota
	CodeInvalidFormat
	CodeNotFound
)

//nolint:gochecknoglobals // lookup table
var codes = map[Code]struct {
	name   string
	status int
}{
	CodeInternal:      {"ERROR_CODE_INTERNAL", http.StatusInternalServerError},
	CodeInvalidFormat: {"ERROR_CODE_INVALID_FORMAT", http.StatusBadRequest},
	CodeNotFound:      {"ERROR_CODE_NOT_FOUND", http.StatusNotFound},
}

func (c Code) String() string {
	if v, ok := codes[c]; ok {
		return v.name
	}
	return codes[CodeInternal].name
}

// Error carries the message shown to clients next to the cause that is only
// logged.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

func (e *Error) Error() string {
	switch {
	case e.err != nil && e.msg != "":
		return e.msg + ": " + e.err.Error()
	case e.err != nil:
		return e.err.Error()
	case e.msg != "":
		return e.msg
	default:
		return e.errType.String()
	}
}

// String is the verbose form used in log records.
func (e *Error) String() string {
	return fmt.Sprintf("type=%s code=%s msg=%q cause=%v", e.errType, e.code, e.msg, e.err)
}

// Msg is the client-facing message.
func (e *Error) Msg() string { return e.msg }

func (e *Error) Type() Type { return e.errType }

func (e *Error) Code() Code { return e.code }

func (e *Error) Unwrap() error { return e.err }

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	if v, ok := codes[e.code]; ok {
		return v.status
	}
	return http.StatusInternalServerError
}

func newError(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer wraps a failure the client cannot fix. An empty msg becomes
// "Internal server error" so the cause never reaches a response body.
func NewServer(err error, msg string) error {
	if msg == "" {
		msg = "Internal server error"
	}
	return newError(err, msg, TypeServer, CodeInternal)
}

// NewNotFound reports a missing resource, keeping the cause for errors.Is.
func NewNotFound(err error, msg string) error {
	return newError(err, msg, TypeBusiness, CodeNotFound)
}

// NewInvalidFormat reports a request body that cannot be decoded.
func NewInvalidFormat(msg string) error {
	if msg == "" {
		msg = "invalid request body"
	}
	return newError(nil, msg, TypeValidation, CodeInvalidFormat)
}
