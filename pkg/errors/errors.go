package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors. All of them mean the build is misconfigured and a
	// human has to fix it before anything downstream can run.
	ErrUnrecognizedUser   ErrorCode = "UNRECOGNIZED_USER"
	ErrUnrecognizedFamily ErrorCode = "UNRECOGNIZED_FAMILY"
	ErrMeshTypeNotFound   ErrorCode = "MESH_TYPE_NOT_FOUND"

	// Control file errors
	ErrControlFileMissing ErrorCode = "CONTROL_FILE_MISSING"
	ErrControlFileRead    ErrorCode = "CONTROL_FILE_READ"
)

// MeshError is a structured error with a code, free-form details and an
// optional wrapped cause
type MeshError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MeshError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MeshError) Unwrap() error {
	return e.Wrapped
}

// Is matches on error code, so errors.Is(err, errors.New(code, "")) works
func (e *MeshError) Is(target error) bool {
	var targetErr *MeshError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MeshError with the given code and message
func New(code ErrorCode, message string) *MeshError {
	return &MeshError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MeshError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MeshError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil error stays nil.
func Wrap(err error, code ErrorCode, message string) *MeshError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MeshError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *MeshError) WithDetail(key string, value interface{}) *MeshError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MeshError) WithDetails(details map[string]interface{}) *MeshError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var meshErr *MeshError
	if errors.As(err, &meshErr) {
		return meshErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MeshError
func GetErrorCode(err error) ErrorCode {
	var meshErr *MeshError
	if errors.As(err, &meshErr) {
		return meshErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MeshError
func GetErrorDetails(err error) map[string]interface{} {
	var meshErr *MeshError
	if errors.As(err, &meshErr) {
		return meshErr.Details
	}
	return nil
}

// FormatDetails renders the details of err as "key: value" lines sorted by
// key. Slices are printed one element per indented line.
func FormatDetails(err error) string {
	details := GetErrorDetails(err)
	if len(details) == 0 {
		return ""
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		switch v := details[k].(type) {
		case []string:
			fmt.Fprintf(&b, "%s:\n", k)
			for _, item := range v {
				fmt.Fprintf(&b, "  %s\n", item)
			}
		case []fmt.Stringer:
			fmt.Fprintf(&b, "%s:\n", k)
			for _, item := range v {
				fmt.Fprintf(&b, "  %s\n", item)
			}
		default:
			fmt.Fprintf(&b, "%s: %v\n", k, v)
		}
	}
	return b.String()
}
