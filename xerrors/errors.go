// Package xerrors provides a richer error type than the standard library's,
// carrying a classification, an operator-facing message, a captured stack,
// and free-form context — used where a plain sentinel error isn't enough
// to explain a construction failure to a caller.
package xerrors

import (
	"fmt"
	"runtime"
)

// ErrorType classifies an Error for callers that branch on failure kind.
type ErrorType uint

const (
	ErrUnknown ErrorType = iota
	ErrInternal
	ErrInvalidArg
	ErrNotFound
	ErrResourceExhausted
	ErrFailedPrecondition
)

// Error is a classified, contextualized error with a captured call stack.
type Error struct {
	Type    ErrorType
	Code    int
	Message string
	Detail  string
	Cause   error
	Stack   []string
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %d: %s (cause: %v)", e.Type.String(), e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %d: %s", e.Type.String(), e.Code, e.Message)
}

// Unwrap supports errors.Is/errors.As against Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

func (t ErrorType) String() string {
	return [...]string{
		"Unknown", "Internal", "InvalidArg", "NotFound", "ResourceExhausted", "FailedPrecondition",
	}[t]
}

// New creates an Error and captures the current call stack.
func New(errType ErrorType, code int, message string, detail string, cause error) *Error {
	e := &Error{
		Type:    errType,
		Code:    code,
		Message: message,
		Detail:  detail,
		Cause:   cause,
		Context: make(map[string]any),
	}
	e.captureStack()
	return e
}

// captureStack records up to depth frames above the caller of New.
func (e *Error) captureStack() {
	const depth = 10
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		e.Stack = append(e.Stack, fmt.Sprintf("%s:%d (%s)", frame.File, frame.Line, frame.Function))
		if !more || len(e.Stack) >= depth {
			break
		}
	}
}

// WithContext attaches a key/value pair for diagnostic printing.
func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// WithDetail overwrites the detail message.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

func Internal(msg string, cause error) *Error {
	return New(ErrInternal, 500, msg, "", cause)
}

func InvalidArg(msg string) *Error {
	return New(ErrInvalidArg, 400, msg, "", nil)
}

// Wrap classifies an existing error, preserving it as Cause. If err is
// already an *Error, its type and stack are kept and only the message
// changes.
func Wrap(err error, errType ErrorType, msg string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := FromError(err); ok {
		e.Cause = err
		e.Message = msg
		return e
	}
	return New(errType, int(errType), msg, "", err)
}

// FromError reports whether err is (or wraps) an *Error.
func FromError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	e, ok := err.(*Error)
	return e, ok
}
