package protocol

import (
	"errors"
	"fmt"

	"github.com/facebookgo/stack"
)

// Exception names raised by the header codec.
const (
	// ExceptionMalformedHeader is raised when decode input is truncated or
	// declares an invalid string length. Recoverable per call.
	ExceptionMalformedHeader = "malformed_header"
	// ExceptionUnknownField indicates a schema/codec mismatch. It should
	// never fire during correct use.
	ExceptionUnknownField = "unknown_field"
	// ExceptionStringTooLong is raised at encode time when a string field
	// exceeds what an int16 length prefix can frame. A programming defect,
	// surfaced as a panic.
	ExceptionStringTooLong = "string_too_long"
)

// ProtocolException represents an application level exception
type ProtocolException struct {
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Stack   stack.Stack `json:"stack"`
}

func (e ProtocolException) Error() string {
	return fmt.Sprintf("[%s] %s", e.Name, e.Message)
}

// NewProtocolException returns a new application level exception
func NewProtocolException(name string, message string, params ...interface{}) error {
	err := ProtocolException{
		Name:    name,
		Message: fmt.Sprintf(message, params...),
		Stack:   stack.Callers(1),
	}
	return err
}

// IsException reports whether err is a ProtocolException with the given name.
func IsException(err error, name string) bool {
	var pe ProtocolException
	if errors.As(err, &pe) {
		return pe.Name == name
	}
	return false
}
