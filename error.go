package medcorpus

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID   = "invalid"    // validation failed
	ENOTFOUND  = "not_found"  // entity does not exist
	EINTERNAL  = "internal"   // internal error
	ETRANSIENT = "transient"  // fetch failure worth retrying
	EPERMANENT = "permanent"  // fetch failure that will not heal
	ENOTITLE   = "no_title"   // page markup has no usable title
	ENOCONTENT = "no_content" // page markup yields no non-empty section
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("medcorpus error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available.
// Returns EINTERNAL for non-application errors and empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available.
// Falls back to the error's own text for non-application errors.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Errorf returns a new Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
