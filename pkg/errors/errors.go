// Package errors provides enhanced error types with context and diagnostic
// metadata for tempo. These errors carry suggestions, a context map, and
// lightweight stack traces to improve user diagnostics.
package errors

import (
	"runtime"
	"strings"
)

// ErrorCode categorizes errors for handling
type ErrorCode string

const (
	// Measurement errors
	ErrCalibrationFailed ErrorCode = "CALIBRATION_FAILED"
	ErrOperationFailed   ErrorCode = "OPERATION_FAILED"

	// Suite errors
	ErrDuplicateBenchmark ErrorCode = "DUPLICATE_BENCHMARK"

	// Store errors
	ErrStoreCorrupted ErrorCode = "STORE_CORRUPTED"
	ErrFileNotFound   ErrorCode = "FILE_NOT_FOUND"
	ErrUnknownFormat  ErrorCode = "UNKNOWN_FORMAT"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// Unknown errors
	ErrUnknown ErrorCode = "UNKNOWN"
)

// StackFrame represents a single stack frame
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// TempoError is the base error type with rich context
type TempoError struct {
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Details    string            `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      error             `json:"-"`
	Context    map[string]string `json:"context,omitempty"`
	Stack      []StackFrame      `json:"stack,omitempty"`
}

// Error implements the error interface
func (e *TempoError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}
	if e.Cause != nil {
		sb.WriteString("\nCaused by: ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *TempoError) Unwrap() error { return e.Cause }

// WithSuggestion adds a suggestion for fixing the error
func (e *TempoError) WithSuggestion(suggestion string) *TempoError {
	e.Suggestion = suggestion
	return e
}

// WithContext adds contextual information
func (e *TempoError) WithContext(key, value string) *TempoError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps another error
func (e *TempoError) WithCause(cause error) *TempoError {
	e.Cause = cause
	return e
}

// WithDetails adds detailed information
func (e *TempoError) WithDetails(details string) *TempoError {
	e.Details = details
	return e
}

// New creates a new TempoError
func New(code ErrorCode, message string) *TempoError {
	err := &TempoError{
		Code:    code,
		Message: message,
		Context: make(map[string]string),
	}
	err.captureStack()
	err.Suggestion = getDefaultSuggestion(code)
	return err
}

// Wrap wraps a standard error with TempoError
func Wrap(err error, code ErrorCode, message string) *TempoError {
	if err == nil {
		return nil
	}
	if tempoErr, ok := err.(*TempoError); ok {
		// Prepend message context
		if message != "" {
			tempoErr.Message = message + ": " + tempoErr.Message
		}
		return tempoErr
	}
	return New(code, message).WithCause(err)
}

// captureStack captures the current stack trace
func (e *TempoError) captureStack() {
	const maxFrames = 10
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(3, pc) // Skip runtime.Callers, captureStack, New/Wrap
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			if !more {
				break
			}
			continue
		}
		e.Stack = append(e.Stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
}

// getDefaultSuggestion provides default fix suggestions
func getDefaultSuggestion(code ErrorCode) string {
	suggestions := map[ErrorCode]string{
		ErrCalibrationFailed:  "Increase --min-time or check that the system clock advances",
		ErrOperationFailed:    "Run the measured command by hand to see its error output",
		ErrDuplicateBenchmark: "Give each benchmark a unique --name",
		ErrStoreCorrupted:     "Re-run the benchmark and save a fresh baseline file",
		ErrFileNotFound:       "Check the path, or create a baseline with: tempo run --out FILE",
		ErrUnknownFormat:      "Supported formats: table, markdown, csv",
		ErrInvalidConfig:      "Fix or delete ~/.tempo.json",
	}
	if s, ok := suggestions[code]; ok {
		return s
	}
	return "Re-run with --debug for diagnostics"
}
