package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ParseFailed indicates the source text is not syntactically valid
	ParseFailed ErrorCode = "PARSE_ERROR"
	// NotFound indicates a named entity does not exist in the file
	NotFound ErrorCode = "NOT_FOUND"
	// RangeInvalid indicates a line range is out of bounds or inverted
	RangeInvalid ErrorCode = "RANGE_INVALID"
	// DiffUnavailable indicates git diff output could not be obtained;
	// never surfaced to callers, the aligner absorbs it
	DiffUnavailable ErrorCode = "DIFF_UNAVAILABLE"
	// ClipboardEmpty indicates the clipboard held no usable text
	ClipboardEmpty ErrorCode = "CLIPBOARD_EMPTY"
	// LanguageUnsupported indicates no grammar exists for the file extension
	LanguageUnsupported ErrorCode = "LANGUAGE_UNSUPPORTED"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// OpenDocs suggests opening documentation
	OpenDocs FixActionType = "open-docs"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"`
}

// ReadError represents a coderead error with code, message, and suggestions
type ReadError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates a new ReadError
func New(code ErrorCode, message string, cause error) *ReadError {
	return &ReadError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: suggestedFixes(code),
	}
}

// Newf creates a new ReadError with a formatted message and no cause
func Newf(code ErrorCode, format string, args ...interface{}) *ReadError {
	return New(code, fmt.Sprintf(format, args...), nil)
}

// Error implements the error interface
func (e *ReadError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Summary is the user-facing form: code and message without the
// wrapped cause, which often carries internal detail (paths, syscall
// errors) that only matters when debugging.
func (e *ReadError) Summary() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ReadError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *ReadError) WithDetails(details interface{}) *ReadError {
	e.Details = details
	return e
}

// IsCode reports whether err is a ReadError carrying the given code
func IsCode(err error, code ErrorCode) bool {
	re, ok := err.(*ReadError)
	return ok && re.Code == code
}

// errorActions maps error codes to suggested fix actions
var errorActions = map[ErrorCode][]FixAction{
	ParseFailed: {
		{
			Type:        RunCommand,
			Command:     "coderead tree <file> --debug",
			Safe:        true,
			Description: "Re-run with debug logging to see parser details",
		},
	},
	NotFound: {
		{
			Type:        RunCommand,
			Command:     "coderead tree <file>",
			Safe:        true,
			Description: "List all classes and functions in the file",
		},
	},
	ClipboardEmpty: {
		{
			Type:        RunCommand,
			Command:     "coderead show <file> --all",
			Safe:        true,
			Description: "Read from a file instead of the clipboard",
		},
	},
}

func suggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := errorActions[code]; ok {
		return fixes
	}
	return nil
}
