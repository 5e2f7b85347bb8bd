package errors

import (
	"fmt"
	"log"
	"os"
)

// ErrorCode classifies the ways an ssm invocation can fail.
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeConfigCorrupt
	ErrCodeUnsupportedSchema
	ErrCodeConfigWrite
	ErrCodeMigration
	ErrCodeHostLookup
	ErrCodeCommandExec
	ErrCodeUserInput
)

// SSMError is a structured error with operation context and a
// classification code. Fatal errors abort the invocation; everything else
// degrades with a warning.
type SSMError struct {
	Op      string    // Operation that failed (e.g., "resolve_config", "lookup_host")
	Code    ErrorCode // Error classification
	Err     error     // Underlying error
	Context string    // Additional context (optional)
	Fatal   bool      // Whether this error should cause program exit
}

// Error implements the error interface.
func (e *SSMError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *SSMError) Unwrap() error {
	return e.Err
}

// IsFatal returns whether this error should cause program termination.
func (e *SSMError) IsFatal() bool {
	return e.Fatal
}

// GetCode returns the error classification code.
func (e *SSMError) GetCode() ErrorCode {
	return e.Code
}

// ErrorHandler provides standardized error handling across the application.
type ErrorHandler struct {
	logger *log.Logger
	debug  bool
}

// NewErrorHandler creates a new error handler with the given logger.
func NewErrorHandler(logger *log.Logger, debug bool) *ErrorHandler {
	return &ErrorHandler{logger: logger, debug: debug}
}

// Handle processes an error according to its type and severity.
func (eh *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	var ssmErr *SSMError
	if e, ok := err.(*SSMError); ok {
		ssmErr = e
	} else {
		ssmErr = &SSMError{Op: "unknown_operation", Code: ErrCodeUnknown, Err: err}
	}

	if eh.debug {
		eh.logger.Printf("[%s] %s", eh.codeToString(ssmErr.Code), ssmErr.Error())
	} else {
		eh.logger.Printf("Error: %s", ssmErr.Error())
	}

	if ssmErr.IsFatal() {
		os.Exit(1)
	}
}

func (eh *ErrorHandler) codeToString(code ErrorCode) string {
	switch code {
	case ErrCodeConfigCorrupt:
		return "CONFIG_CORRUPT"
	case ErrCodeUnsupportedSchema:
		return "UNSUPPORTED_SCHEMA"
	case ErrCodeConfigWrite:
		return "CONFIG_WRITE"
	case ErrCodeMigration:
		return "MIGRATION"
	case ErrCodeHostLookup:
		return "HOST_LOOKUP"
	case ErrCodeCommandExec:
		return "COMMAND_EXEC"
	case ErrCodeUserInput:
		return "USER_INPUT"
	default:
		return "UNKNOWN"
	}
}

// Helper functions for creating common error types

// NewConfigCorruptError wraps a parse failure for a file that exists but is
// broken. Fatal: falling back to defaults would mask what the user wrote.
func NewConfigCorruptError(path string, err error) *SSMError {
	return &SSMError{
		Op:      "resolve_config",
		Code:    ErrCodeConfigCorrupt,
		Err:     err,
		Context: fmt.Sprintf("path: %s", path),
		Fatal:   true,
	}
}

// NewUnsupportedSchemaError marks a config file written by a newer release.
// Fatal: loading it would silently truncate fields this build cannot see.
func NewUnsupportedSchemaError(path string, err error) *SSMError {
	return &SSMError{
		Op:      "resolve_config",
		Code:    ErrCodeUnsupportedSchema,
		Err:     err,
		Context: fmt.Sprintf("path: %s", path),
		Fatal:   true,
	}
}

// NewConfigWriteError wraps a failed config write-back.
func NewConfigWriteError(path string, err error) *SSMError {
	return &SSMError{
		Op:      "write_config",
		Code:    ErrCodeConfigWrite,
		Err:     err,
		Context: fmt.Sprintf("path: %s", path),
	}
}

// NewHostLookupError reports that no completion candidate for a host
// resolved.
func NewHostLookupError(host string, err error) *SSMError {
	return &SSMError{
		Op:      "lookup_host",
		Code:    ErrCodeHostLookup,
		Err:     err,
		Context: fmt.Sprintf("host: %s", host),
		Fatal:   true,
	}
}

// NewCommandExecError wraps a failure to start the underlying ssh client.
func NewCommandExecError(binary string, err error) *SSMError {
	return &SSMError{
		Op:      "exec_command",
		Code:    ErrCodeCommandExec,
		Err:     err,
		Context: fmt.Sprintf("binary: %s", binary),
		Fatal:   true,
	}
}

// NewUserInputError wraps invalid interactive or flag input.
func NewUserInputError(prompt string, err error) *SSMError {
	return &SSMError{
		Op:      "user_input",
		Code:    ErrCodeUserInput,
		Err:     err,
		Context: fmt.Sprintf("input: %s", prompt),
	}
}
