package errors

import (
	"errors"
	"fmt"
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
	ErrConfigLoad              ErrorCode = "CONFIG_LOAD"
	ErrTemplateDirMissing      ErrorCode = "TEMPLATE_DIR_MISSING"
	ErrTemplateFilesDirMissing ErrorCode = "TEMPLATE_FILES_DIR_MISSING"
	ErrTargetDirExists         ErrorCode = "TARGET_DIR_EXISTS"

	// Variable file errors
	ErrVariableFileNotFound ErrorCode = "VARIABLE_FILE_NOT_FOUND"
	ErrVariableFileRead     ErrorCode = "VARIABLE_FILE_READ"
	ErrVariableFileDecode   ErrorCode = "VARIABLE_FILE_DECODE"
	ErrVariableFileEmpty    ErrorCode = "VARIABLE_FILE_EMPTY"

	// Choice errors
	ErrChoiceInput       ErrorCode = "CHOICE_INPUT"
	ErrChoiceNotANumber  ErrorCode = "CHOICE_NOT_A_NUMBER"
	ErrChoiceOutOfBounds ErrorCode = "CHOICE_OUT_OF_BOUNDS"
	ErrChoiceAnswer      ErrorCode = "CHOICE_ANSWER"

	// Prompt errors
	ErrPromptInput ErrorCode = "PROMPT_INPUT"
	ErrAnswersFile ErrorCode = "ANSWERS_FILE"

	// Plugin errors
	ErrPluginRun     ErrorCode = "PLUGIN_RUN"
	ErrPluginOutput  ErrorCode = "PLUGIN_OUTPUT"
	ErrPluginDecode  ErrorCode = "PLUGIN_DECODE"
	ErrPluginFailure ErrorCode = "PLUGIN_FAILURE"

	// Template processing errors
	ErrNoFilesToProcess ErrorCode = "NO_FILES_TO_PROCESS"
	ErrIgnorePattern    ErrorCode = "IGNORE_PATTERN"
	ErrFileRead         ErrorCode = "FILE_READ"
	ErrFileContent      ErrorCode = "FILE_CONTENT"
	ErrFileWrite        ErrorCode = "FILE_WRITE"
	ErrDirCreate        ErrorCode = "DIR_CREATE"
	ErrPathPrefix       ErrorCode = "PATH_PREFIX"
	ErrTemplateRender   ErrorCode = "TEMPLATE_RENDER"
	ErrTemplateWalk     ErrorCode = "TEMPLATE_WALK"

	// Post-processing errors
	ErrHookRun    ErrorCode = "HOOK_RUN"
	ErrHookFailed ErrorCode = "HOOK_FAILED"
	ErrHookKilled ErrorCode = "HOOK_KILLED"

	// Remote errors
	ErrRemoteURL      ErrorCode = "REMOTE_URL"
	ErrRemoteCheckout ErrorCode = "REMOTE_CHECKOUT"
	ErrRemoteClone    ErrorCode = "REMOTE_CLONE"

	// Bootstrap errors
	ErrBootstrapDirExists ErrorCode = "BOOTSTRAP_DIR_EXISTS"
	ErrBootstrapWrite     ErrorCode = "BOOTSTRAP_WRITE"
)

// ZatError represents a structured error with code and details.
//
// Exception holds the low-level cause as reported by the system (an I/O
// error, a decoder message) and Remediation tells the user how to fix it.
type ZatError struct {
	Code        ErrorCode
	Message     string
	Exception   string
	Remediation string
	Details     map[string]interface{}
	Wrapped     error
}

// Error implements the error interface
func (e *ZatError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ZatError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ZatError) Is(target error) bool {
	var targetErr *ZatError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ZatError with the given code and message
func New(code ErrorCode, message string) *ZatError {
	return &ZatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ZatError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ZatError {
	return &ZatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ZatError. The wrapped error text
// becomes the exception unless one is set later.
func Wrap(err error, code ErrorCode, message string) *ZatError {
	if err == nil {
		return nil
	}
	return &ZatError{
		Code:      code,
		Message:   message,
		Exception: err.Error(),
		Details:   make(map[string]interface{}),
		Wrapped:   err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ZatError {
	if err == nil {
		return nil
	}
	return &ZatError{
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		Exception: err.Error(),
		Details:   make(map[string]interface{}),
		Wrapped:   err,
	}
}

// WithDetail adds a detail to the error
func (e *ZatError) WithDetail(key string, value interface{}) *ZatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRemediation sets the fix suggested to the user
func (e *ZatError) WithRemediation(format string, args ...interface{}) *ZatError {
	e.Remediation = fmt.Sprintf(format, args...)
	return e
}

// WithException overrides the low-level cause shown to the user
func (e *ZatError) WithException(exception string) *ZatError {
	e.Exception = exception
	return e
}

// Format renders the error as the multi-line block shown by the CLI.
func (e *ZatError) Format() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Exception != "" {
		b.WriteString("\nCause: ")
		b.WriteString(e.Exception)
	}
	if e.Remediation != "" {
		b.WriteString("\nFix: ")
		b.WriteString(e.Remediation)
	}
	return b.String()
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var zatErr *ZatError
	if errors.As(err, &zatErr) {
		return zatErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ZatError
func GetErrorCode(err error) ErrorCode {
	var zatErr *ZatError
	if errors.As(err, &zatErr) {
		return zatErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ZatError
func GetErrorDetails(err error) map[string]interface{} {
	var zatErr *ZatError
	if errors.As(err, &zatErr) {
		return zatErr.Details
	}
	return nil
}

// AsZatError returns the first ZatError in the chain, if any
func AsZatError(err error) (*ZatError, bool) {
	var zatErr *ZatError
	if errors.As(err, &zatErr) {
		return zatErr, true
	}
	return nil, false
}
