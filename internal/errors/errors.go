package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput        = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON       = errors.New("invalid JSON format")
	ErrInvalidYAML       = errors.New("invalid YAML format")
	ErrMultipleJSON      = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrMultipleDocuments = errors.New("multiple YAML documents found, only one is allowed")
	ErrUnsupportedTag    = errors.New("unsupported YAML tag")
	ErrUnsupportedKey    = errors.New("mapping key cannot be represented as a JSON object key")
	ErrNonFiniteNumber   = errors.New("number cannot be represented in JSON")
	ErrRecursiveAlias    = errors.New("YAML alias refers to one of its own ancestors")
	ErrFileNotFound      = errors.New("file not found")
	ErrInvalidFilePath   = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeUsage   ErrorType = "usage"
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeEncode  ErrorType = "encode"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewUsageError creates a new error for malformed or missing arguments
func NewUsageError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new error related to reading the input file
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to decoding the input document
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewEncodeError creates a new error related to serializing the output document
func NewEncodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeEncode,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing the output file
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// IsUsage reports whether err is a usage error
func IsUsage(err error) bool {
	return errors.Is(err, &AppError{Type: ErrorTypeUsage})
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if appErr.Err != nil {
			msg = fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
		}
		switch appErr.Type {
		case ErrorTypeUsage:
			return fmt.Sprintf("Usage error: %s", msg)
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", msg)
		case ErrorTypeParsing:
			return fmt.Sprintf("Parse error: %s", msg)
		case ErrorTypeEncode:
			return fmt.Sprintf("Encode error: %s", msg)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", msg)
		default:
			return fmt.Sprintf("Error: %s", msg)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide a document to convert."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrInvalidYAML) {
		return "Error: The input contains invalid YAML. Please check your YAML syntax."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
