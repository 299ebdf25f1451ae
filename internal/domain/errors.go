package domain

import "fmt"

// ErrorKind classifies a failed validation so inbound adapters can pick a
// status code without inspecting messages.
type ErrorKind int

const (
	// KindInvalidParameter is a profile or lang outside the catalog.
	KindInvalidParameter ErrorKind = iota + 1
	// KindBadRequest is a wrong method or a missing css field.
	KindBadRequest
	// KindValidationTool covers a validator that ran but produced no usable
	// report: empty output, unparseable XML, or a timeout.
	KindValidationTool
	// KindExecutionFailure means the validator could not be started at all.
	KindExecutionFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindBadRequest:
		return "bad_request"
	case KindValidationTool:
		return "validation_tool_error"
	case KindExecutionFailure:
		return "execution_failure"
	default:
		return "unknown"
	}
}

// Fixed user-facing messages.
const (
	MsgBadRequest       = `Send CSS via POST in the "css" field with optional parameters`
	MsgValidationTool   = "Error validating CSS"
	MsgExecutionFailure = "Failed to execute validator"
	MsgNoOutputCaptured = "No output or error captured"
)

// Error is the single error type returned by the validation service.
// Details and ExitCode are only meaningful for process-related kinds; a nil
// ExitCode means the process never produced one.
type Error struct {
	Kind     ErrorKind
	Message  string
	Details  string
	ExitCode *int
	Err      error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// BadRequest returns the error for a request without CSS or with the wrong method.
func BadRequest() *Error {
	return &Error{Kind: KindBadRequest, Message: MsgBadRequest}
}

// ToolError reports a validator run that yielded no report.
func ToolError(details string, exitCode int, cause error) *Error {
	code := exitCode
	return &Error{
		Kind:     KindValidationTool,
		Message:  MsgValidationTool,
		Details:  details,
		ExitCode: &code,
		Err:      cause,
	}
}

// ExecutionFailure reports a validator that could not be run.
func ExecutionFailure(cause error) *Error {
	return &Error{
		Kind:    KindExecutionFailure,
		Message: MsgExecutionFailure,
		Details: cause.Error(),
		Err:     cause,
	}
}
